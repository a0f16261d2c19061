package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/delvepad/ai-delvepad/internal/autosave"
	"github.com/delvepad/ai-delvepad/internal/catalog"
	"github.com/delvepad/ai-delvepad/internal/config"
	"github.com/delvepad/ai-delvepad/internal/store"
)

const (
	AppID   = "com.delvepad.ai-delvepad"
	AppName = "A.I. DelvePad"
)

// Shell is the running application: the window, its store and the
// background saver that keeps the store on disk
type Shell struct {
	Root     *RootUI
	Store    *store.Store
	Settings *config.Settings
	Autosave *autosave.Scheduler
	window   fyne.Window
}

// NewShell loads persisted state and builds the UI inside window. The
// autosave scheduler is created stopped; lifecycle saves are registered.
func NewShell(fyneApp fyne.App, window fyne.Window, opts config.LaunchOptions) *Shell {
	settings := config.NewSettingsWithDefaults(fyneApp, opts)

	sh := &Shell{
		Settings: settings,
		window:   window,
	}

	sh.Store = store.New(
		settings.Preferences(),
		catalog.BuiltIn(settings.GetSampleCatalog()),
		store.WithLegacyMirror(settings.GetMirrorLegacyKeys()),
		store.WithOnChange(sh.onStoreChange),
	)
	sh.Store.LoadAll()

	sh.Root = NewRootUI(window, fyneApp, sh.Store, settings)
	sh.Autosave = autosave.NewScheduler(sh.Store, settings.GetAutosaveInterval())
	autosave.BindLifecycle(fyneApp.Lifecycle(), sh.Store)
	return sh
}

// Run shows the window and blocks until the app quits, saving on the way out
func (sh *Shell) Run(ctx context.Context) {
	sh.Autosave.Start(ctx)
	sh.window.ShowAndRun()

	sh.Autosave.Stop()
	sh.Store.SaveAll()
	log.Printf("%s exited", AppName)
}

func (sh *Shell) onStoreChange() {
	if sh.Root == nil {
		return
	}
	fyne.Do(sh.Root.Refresh)
}

// Launch creates the Fyne app with the given launch options and runs it
func Launch(opts config.LaunchOptions) {
	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(NewDelvePadTheme())

	window := fyneApp.NewWindow(AppName)
	if icon, err := LoadLogoResource(); err == nil {
		fyneApp.SetIcon(icon)
	}

	NewShell(fyneApp, window, opts).Run(context.Background())
}
