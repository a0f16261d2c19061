package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Subjects assigned to catalog items
const (
	SubjectAI     = "A.I."
	SubjectCustom = "Custom"
)

// idSeparator replaces every space in a title when deriving an id
const idSeparator = "-"

// CatalogItem is a single course or video entry. Identity is the ID alone.
type CatalogItem struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Subject         string  `json:"subject"`
	Platform        string  `json:"platform"`
	DurationMinutes int     `json:"mins"`
	Year            int     `json:"year"`
	ViewCount       int     `json:"views"`
	URL             *string `json:"url,omitempty"`
}

// MakeID derives the stable id of an item from its title: lowercased, with
// spaces replaced by hyphens. Titles that normalize to the same string share
// an id.
func MakeID(title string) string {
	// A Caser is stateful, so one is built per call.
	lower := cases.Lower(language.Und).String(title)
	return strings.ReplaceAll(lower, " ", idSeparator)
}

// NewCatalogItem creates an item whose ID is derived from title once.
// Renaming the title later does not change the ID.
func NewCatalogItem(title, subject, platform string, mins, year, views int, url string) CatalogItem {
	item := CatalogItem{
		ID:              MakeID(title),
		Title:           title,
		Subject:         subject,
		Platform:        platform,
		DurationMinutes: mins,
		Year:            year,
		ViewCount:       views,
	}
	if url != "" {
		item.URL = &url
	}
	return item
}

// Equal reports whether two items share an id
func (ci CatalogItem) Equal(other CatalogItem) bool {
	return ci.ID == other.ID
}

// Link returns the item URL, or "" when it has none
func (ci CatalogItem) Link() string {
	if ci.URL == nil {
		return ""
	}
	return *ci.URL
}
