package autosave

// Package autosave drives periodic and lifecycle-triggered saves. The store
// it saves has no timer of its own; the application shell owns a Scheduler
// and binds the app lifecycle hooks at startup.
