// Package cli provides the interactive peer review command-line client.
//
// It wires configuration, API services, and an interactive REPL. Typical flow:
// prompt for credentials, start a background connectivity watcher, and execute
// user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Submit a manuscript (body upload + fee escrow)
//   - Review manuscripts and watch them reach a verdict
//   - List / Show manuscripts, download content
//   - Inspect and update the user profile
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and StartOnlineStatusWatcher for details.
package cli
