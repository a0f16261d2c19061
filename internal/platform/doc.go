package platform

// Package platform contains OS/platform integration glue: sharing favorite
// links through the clipboard and notifications, and opening item links in
// the system browser.
