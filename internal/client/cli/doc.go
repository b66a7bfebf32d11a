// Package cli provides the interactive inoauto command-line client.
//
// It wires configuration, the REST API client, the plate lookup service and
// an interactive REPL. Typical flow: prompt for credentials, then execute
// user commands against the dealership inventory.
//
// Key features:
//   - Login / Logout
//   - List registered automobiles
//   - Register a new automobile through an interactive form with plate
//     lookup auto-fill, staged photos/documents and a two-phase submit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and runForm for details.
package cli
