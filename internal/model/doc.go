package model

// Package model defines the domain data structures shared across the app:
// catalog items with their title-derived ids, dashboard statistics, and the
// lenient numeric parsing used by the add-item form.
