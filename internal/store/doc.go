// Package store implements the catalog and preference store: the built-in
// and user-added catalog items, the favorite and completed id sets, and the
// rules that keep them mirrored in the Fyne preference store.
//
// Every mutation is persisted immediately. SaveAll is idempotent and is also
// driven by the application shell on a timer and on lifecycle transitions.
// Persistence is best-effort: encode failures are logged and never undo the
// in-memory change.
package store
