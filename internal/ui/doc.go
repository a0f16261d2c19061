package ui

// Package ui contains the Fyne-based mobile user interface. It renders the
// glossary, the LLM process article, custom tutorials, favorites and the
// dashboard, and forwards every user action to the catalog store. All UI
// strings are localized via Localization.
