// Package cli provides the interactive TeachLoop command-line client.
//
// It wires configuration, the local database, the gRPC client, the session
// controller and the view services, and runs a REPL over them. On start the
// previous session is restored if the server still accepts it, and a
// background watcher tracks whether the server is reachable.
//
// Commands:
//   - signup, login, logout, whoami
//   - profile (bio and skills), avatar <path>
//   - courses [search...] [--category NAME], enroll <course-id>
//   - learning, track <course-id> <percent>, teach, newcourse
//   - connections, progress, ping
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
