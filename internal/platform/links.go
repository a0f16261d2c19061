package platform

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/delvepad/ai-delvepad/internal/model"
)

// ErrInvalidLink is returned for item links that are not absolute URLs
var ErrInvalidLink = errors.New("invalid link")

// OpenLink opens an item link in the system browser
func OpenLink(app fyne.App, raw string) error {
	u, ok := model.ParseLink(raw)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLink, raw)
	}
	if err := app.OpenURL(u); err != nil {
		return fmt.Errorf("failed to open %s: %w", u, err)
	}
	return nil
}
