// Package cli provides the interactive vibe tracker terminal client.
//
// It wires configuration, the REST client and the in-memory Board into a
// REPL. The board is loaded once at start; afterwards each command performs
// one API call and, on success, updates the local lists (prepend on create,
// remove on delete, replace in place on update). A background watcher pings
// the server and shows online/offline in the prompt.
//
// Items are addressed by their 1-based position as printed by "vibes" and
// "goals". Use "reload" to pick up changes made by other clients.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
