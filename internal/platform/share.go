package platform

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
)

// Share text constants
const (
	ShareHeader            = "Checkout these free A.I. vids:"
	ShareSeparator         = "\n\n"
	ShareNotificationTitle = "A.I. links copied"
)

// ErrNothingToShare is returned when there are no links to share
var ErrNothingToShare = errors.New("no favorite links to share")

// ShareText builds the message shared for a list of links
func ShareText(urls []string) string {
	return ShareHeader + ShareSeparator + strings.Join(urls, ShareSeparator)
}

// ShareLinks copies the share message to the clipboard and posts a
// notification. Mobile platforms pick the text up from the clipboard.
func ShareLinks(app fyne.App, urls []string) error {
	if len(urls) == 0 {
		return ErrNothingToShare
	}

	text := ShareText(urls)
	app.Clipboard().SetContent(text)
	app.SendNotification(fyne.NewNotification(ShareNotificationTitle, text))
	return nil
}
