package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/delvepad/ai-delvepad/internal/config"
	"github.com/delvepad/ai-delvepad/internal/model"
	"github.com/delvepad/ai-delvepad/internal/platform"
	"github.com/delvepad/ai-delvepad/internal/store"
)

// Window sizing for desktop runs
const (
	RootWindowWidth  float32 = 420
	RootWindowHeight float32 = 760
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	store        *store.Store
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	tabs *container.AppTabs

	// Tutorial Add-Ons tab
	allItems   []model.CatalogItem
	itemList   *widget.List
	itemsEmpty *widget.Label

	// Favorites tab
	favoriteItems  []model.CatalogItem
	favoriteList   *widget.List
	favoritesEmpty *widget.Label
	shareBtn       *widget.Button

	// Dashboard tab
	totalLabel     *widget.Label
	favoritedLabel *widget.Label
	completedLabel *widget.Label
	progressBar    *widget.ProgressBar
}

// NewRootUI creates and initializes the main UI over a loaded store
func NewRootUI(window fyne.Window, app fyne.App, catalogStore *store.Store, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		store:        catalogStore,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	if !ui.mobile.IsMobileDevice() {
		window.Resize(fyne.NewSize(RootWindowWidth, RootWindowHeight))
	}

	ui.setupUI()
	ui.Refresh()
	log.Printf("RootUI initialized with %d items", len(ui.allItems))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	title := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	var header *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, container.NewHBox(logoImage, title), settingsBtn)
	} else {
		header = container.NewBorder(nil, nil, title, settingsBtn)
	}

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyTabGlossary), ui.createGlossaryView()),
		container.NewTabItem(ui.localization.GetText(KeyTabLLMProcess), ui.createArticleView()),
		container.NewTabItem(ui.localization.GetText(KeyTabAddOns), ui.createItemsView()),
		container.NewTabItem(ui.localization.GetText(KeyTabFavorites), ui.createFavoritesView()),
		container.NewTabItem(ui.localization.GetText(KeyTabDashboard), ui.createDashboardView()),
	)
	if ui.mobile.IsMobileDevice() {
		ui.tabs.SetTabLocation(container.TabLocationBottom)
	}

	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, ui.tabs))
}

// createMenu builds the desktop main menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
		languageMenu,
	))
}

// onLanguageChange stores the language and rebuilds the shell in it
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.localization.SetLanguage(langCode)

	selected := 0
	if ui.tabs != nil {
		selected = ui.tabs.SelectedIndex()
	}
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.tabs.SelectIndex(selected)
	ui.Refresh()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onLanguageChange).Show()
}

// Refresh re-reads the store into every view. Must run on the UI goroutine.
func (ui *RootUI) Refresh() {
	ui.allItems = ui.store.AllItems()
	ui.favoriteItems = ui.store.FavoriteItems()

	ui.itemList.Refresh()
	setVisible(ui.itemsEmpty, len(ui.allItems) == 0)

	ui.favoriteList.Refresh()
	setVisible(ui.favoritesEmpty, len(ui.favoriteItems) == 0)
	if len(ui.store.FavoriteURLs()) == 0 {
		ui.shareBtn.Disable()
	} else {
		ui.shareBtn.Enable()
	}

	ui.updateDashboard(ui.store.Stats())
}

// onToggleFavorite stars or unstars an item
func (ui *RootUI) onToggleFavorite(id string) {
	ui.store.ToggleFavorite(id)
}

// onToggleCompleted marks a favorite as viewed or not viewed
func (ui *RootUI) onToggleCompleted(id string) {
	ui.store.ToggleCompleted(id)
}

// onUnfavorite asks before dropping an item from the favorites list
func (ui *RootUI) onUnfavorite(id string) {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyRemoveFavorite),
		ui.localization.GetText(KeyConfirmUnfav),
		func(confirmed bool) {
			if confirmed && ui.store.IsFavorite(id) {
				ui.store.ToggleFavorite(id)
			}
		},
		ui.window,
	)
}

// onDeleteItem asks before deleting a custom item
func (ui *RootUI) onDeleteItem(id string) {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyDelete),
		ui.localization.GetText(KeyConfirmDelete),
		func(confirmed bool) {
			if confirmed && !ui.store.DeleteCustomItem(id) {
				log.Printf("Delete ignored, %s is not a custom item", id)
			}
		},
		ui.window,
	)
}

// onOpenLink opens an item's URL in the system browser
func (ui *RootUI) onOpenLink(link string) {
	if err := platform.OpenLink(ui.app, link); err != nil {
		log.Printf("Failed to open link: %v", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpenLink), err), ui.window)
	}
}

// onShare copies the favorite links to the clipboard
func (ui *RootUI) onShare() {
	err := platform.ShareLinks(ui.app, ui.store.FavoriteURLs())
	switch {
	case errors.Is(err, platform.ErrNothingToShare):
		ui.shareBtn.Disable()
	case err != nil:
		dialog.ShowError(err, ui.window)
	default:
		dialog.ShowInformation(ui.localization.GetText(KeyShare), ui.localization.GetText(KeyLinksCopied), ui.window)
	}
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if obj == nil {
		return
	}
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
