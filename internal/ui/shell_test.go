package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delvepad/ai-delvepad/internal/config"
	"github.com/delvepad/ai-delvepad/internal/store"
)

func newTestShell(t *testing.T, opts config.LaunchOptions) *Shell {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := a.NewWindow("test")
	t.Cleanup(w.Close)
	return NewShell(a, w, opts)
}

func TestShell_EmptyCatalog(t *testing.T) {
	sh := newTestShell(t, config.DefaultLaunchOptions())

	assert.Empty(t, sh.Root.allItems)
	assert.True(t, sh.Root.itemsEmpty.Visible())
	assert.True(t, sh.Root.favoritesEmpty.Visible())
	assert.True(t, sh.Root.shareBtn.Disabled())
	assert.Equal(t, "0", sh.Root.totalLabel.Text)
	assert.False(t, sh.Autosave.Running())
}

func TestShell_SampleCatalog(t *testing.T) {
	opts := config.DefaultLaunchOptions()
	opts.SampleCatalog = true
	sh := newTestShell(t, opts)

	require.NotEmpty(t, sh.Root.allItems)
	assert.False(t, sh.Root.itemsEmpty.Visible())
	assert.Equal(t, len(sh.Root.allItems), sh.Store.Stats().TotalItems)
}

func TestShell_StoreChangesRefreshViews(t *testing.T) {
	sh := newTestShell(t, config.DefaultLaunchOptions())

	item, err := sh.Store.AddCustomItem(store.CustomItemInput{
		Title:           "Intro to X",
		Platform:        "Youtube",
		DurationMinutes: "10",
		Year:            "2024",
		URL:             "http://x",
	})
	require.NoError(t, err)

	require.Len(t, sh.Root.allItems, 1)
	assert.Equal(t, "1", sh.Root.totalLabel.Text)
	assert.True(t, sh.Root.shareBtn.Disabled())

	sh.Root.onToggleFavorite(item.ID)
	require.Len(t, sh.Root.favoriteItems, 1)
	assert.False(t, sh.Root.shareBtn.Disabled())
	assert.Equal(t, "1", sh.Root.favoritedLabel.Text)

	sh.Root.onToggleCompleted(item.ID)
	assert.Equal(t, "1", sh.Root.completedLabel.Text)
	assert.InDelta(t, 1.0, sh.Root.progressBar.Value, 1e-9)

	require.True(t, sh.Store.DeleteCustomItem(item.ID))
	assert.Empty(t, sh.Root.allItems)
	assert.Empty(t, sh.Root.favoriteItems)
	assert.True(t, sh.Root.shareBtn.Disabled())
}

func TestShell_ShareCopiesFavoriteLinks(t *testing.T) {
	sh := newTestShell(t, config.DefaultLaunchOptions())

	item, err := sh.Store.AddCustomItem(store.CustomItemInput{
		Title:           "Agents",
		Platform:        "Udemy",
		DurationMinutes: "5",
		Year:            "2025",
		URL:             "https://example.com/agents",
	})
	require.NoError(t, err)
	sh.Store.ToggleFavorite(item.ID)

	sh.Root.onShare()

	got := sh.Root.app.Clipboard().Content()
	assert.Equal(t, "Checkout these free A.I. vids:\n\nhttps://example.com/agents", got)
}

func TestAddItemForm_SubmitGate(t *testing.T) {
	sh := newTestShell(t, config.DefaultLaunchOptions())

	done := 0
	form := NewAddItemForm(sh.Store, sh.Root.localization, sh.Root.mobile, func() { done++ })
	assert.True(t, form.submitBtn.Disabled())

	form.titleEntry.SetText("Intro to X")
	form.minutesEntry.SetText("10")
	form.yearEntry.SetText("2024")
	form.urlEntry.SetText("http://x")
	assert.True(t, form.submitBtn.Disabled(), "platform is still empty")

	form.platformEntry.SetText("Youtube")
	assert.False(t, form.submitBtn.Disabled())

	test.Tap(form.submitBtn)
	assert.Equal(t, 1, done)

	custom := sh.Store.CustomItems()
	require.Len(t, custom, 1)
	assert.Equal(t, "intro-to-x", custom[0].ID)
}

func TestLocalization_Fallbacks(t *testing.T) {
	tests := []struct {
		lang string
		key  string
		want string
	}{
		{"en", KeyTabFavorites, "Favs"},
		{"es", KeyTabFavorites, "Favoritos"},
		{"system", KeyTabDashboard, "Dashboard"},
		{"xx", KeyTabGlossary, "Glossary"},
		{"es", "missing_key", "missing_key"},
	}

	for _, tt := range tests {
		l := NewLocalization()
		l.SetLanguage(tt.lang)
		if got := l.GetText(tt.key); got != tt.want {
			t.Errorf("Expected %q for %s/%s, got %q", tt.want, tt.lang, tt.key, got)
		}
	}
}

func TestItemDetail(t *testing.T) {
	sh := newTestShell(t, config.DefaultLaunchOptions())
	item, err := sh.Store.AddCustomItem(store.CustomItemInput{
		Title:           "Intro to X",
		Platform:        "Youtube",
		DurationMinutes: "ten",
		Year:            "2024",
		URL:             "http://x",
	})
	require.NoError(t, err)

	assert.Equal(t, "Youtube · 2024", itemDetail(item))
}
