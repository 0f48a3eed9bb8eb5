package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/teachloop/internal/client/session"
	"github.com/fatih/color"
)

var (
	onlineColor  = color.New(color.FgGreen)
	offlineColor = color.New(color.FgRed)
	nameColor    = color.New(color.Bold)
)

// getStatus renders the prompt status: who is signed in (or the controller
// state) and the connectivity mode.
func (a *App) getStatus() string {
	snap := a.session.Snapshot()

	who := snap.State.String()
	if snap.Identity != nil {
		who = nameColor.Sprint(displayName(snap.Identity))
	}

	mode := a.Mode()
	c := offlineColor
	if mode == ModeOnline {
		c = onlineColor
	}
	return fmt.Sprintf("(%s %s)", who, c.Sprint(string(mode)))
}

func displayName(id *session.Identity) string {
	if id.DisplayName != "" {
		return id.DisplayName
	}
	return id.Email
}

// Ping checks the server round trip and refreshes the shown mode.
func (a *App) Ping(ctx context.Context) error {
	if err := a.health.Ping(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		return err
	}
	a.setMode(ctx, ModeOnline)
	fmt.Fprintln(a.out, "Server is reachable.")
	return nil
}

// restore runs the startup bootstrap and reports what it found.
func (a *App) restore(ctx context.Context) {
	res, err := a.session.Bootstrap(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not restore the previous session:", describe(err))
		return
	}

	id := a.session.Snapshot().Identity
	if id == nil {
		return
	}
	fmt.Fprintf(a.out, "Welcome back, %s!\n", displayName(id))
	if res.Outcome == session.Degraded {
		fmt.Fprintln(a.out, "Your profile could not be loaded; some details are missing.")
	}
}

// Root restores the session, starts the connectivity watcher and runs the
// REPL on stdin.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to TeachLoop CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	a.restore(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
