// Package cli provides the interactive postboard command-line client.
//
// It wires configuration, the local session database, the API client and the
// services behind a line-oriented REPL. The session of the previous run is
// restored at startup.
//
// Key features:
//   - Register / Login / Logout / Profile
//   - List posts with their comments
//   - Create, edit and delete posts, optionally with an image upload
//   - Add, edit and delete comments
//   - Comments-per-post report
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
