package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// promptFn writes the prompt without a newline.
var promptFn = fmt.Print

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Avatar(ctx context.Context, path string) error
	Courses(ctx context.Context, args []string) error
	Enroll(ctx context.Context, courseID string) error
	Learning(ctx context.Context) error
	Track(ctx context.Context, courseID, percent string) error
	Ping(ctx context.Context) error
	Teach(ctx context.Context) error
	NewCourse(ctx context.Context) error
	Connections(ctx context.Context) error
	Progress(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: signup, login, courses [search...] [--category NAME], ping, exit"
	helpSignedIn  = "Available commands: whoami, profile, avatar <path>, courses [search...] [--category NAME], " +
		"enroll <course-id>, learning, track <course-id> <percent>, teach, newcourse, connections, progress, " +
		"ping, logout, exit"
)

// signedInOnly are the commands that need a session.
var signedInOnly = map[string]bool{
	"logout": true, "whoami": true, "profile": true, "avatar": true, "enroll": true,
	"learning": true, "track": true, "teach": true, "newcourse": true, "connections": true, "progress": true,
}

// runREPL reads commands line by line from reader and dispatches them to a.
// It returns on EOF or on "exit"/"quit". Command errors are printed and the
// loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		promptFn(fmt.Sprintf("tl %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if signedInOnly[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "signup", "register":
			report(a.Signup(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "whoami":
			report(a.Whoami(ctx))

		case "profile":
			report(a.EditProfile(ctx))

		case "avatar":
			if len(args) != 1 {
				printlnFn("Usage: avatar <path>")
				continue
			}
			report(a.Avatar(ctx, args[0]))

		case "courses":
			report(a.Courses(ctx, args))

		case "enroll":
			if len(args) != 1 {
				printlnFn("Usage: enroll <course-id>")
				continue
			}
			report(a.Enroll(ctx, args[0]))

		case "learning":
			report(a.Learning(ctx))

		case "track":
			if len(args) != 2 {
				printlnFn("Usage: track <course-id> <percent>")
				continue
			}
			report(a.Track(ctx, args[0], args[1]))

		case "ping":
			report(a.Ping(ctx))

		case "teach":
			report(a.Teach(ctx))

		case "newcourse":
			report(a.NewCourse(ctx))

		case "connections":
			report(a.Connections(ctx))

		case "progress":
			report(a.Progress(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", describe(err))
	}
}
