package ui

import (
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/delvepad/ai-delvepad/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	onLanguageChange func(lang string)

	// UI components
	intervalEntry  *widget.Entry
	languageSelect *widget.Select
	mirrorCheck    *widget.Check
	samplesCheck   *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onLanguageChange runs
// when a different language is saved.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onLanguageChange func(lang string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:         settings,
		localization:     localization,
		window:           window,
		onLanguageChange: onLanguageChange,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder(strconv.Itoa(config.MinAutosaveInterval) + "-" + strconv.Itoa(config.MaxAutosaveInterval))

	languageOptions := make([]string, 0)
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	slices.Sort(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.mirrorCheck = widget.NewCheck(sd.localization.GetText(KeyMirrorLegacy), nil)
	sd.samplesCheck = widget.NewCheck(sd.localization.GetText(KeySampleCatalog), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyAutosave)),
		sd.intervalEntry,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,

		widget.NewSeparator(),
		sd.mirrorCheck,
		sd.samplesCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(FormDialogWidth, FormDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.intervalEntry.SetText(strconv.Itoa(int(sd.settings.GetAutosaveInterval().Seconds())))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.mirrorCheck.SetChecked(sd.settings.GetMirrorLegacyKeys())
	sd.samplesCheck.SetChecked(sd.settings.GetSampleCatalog())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if seconds, err := strconv.Atoi(sd.intervalEntry.Text); err == nil {
		sd.settings.SetAutosaveInterval(seconds)
	}
	sd.settings.SetMirrorLegacyKeys(sd.mirrorCheck.Checked)
	sd.settings.SetSampleCatalog(sd.samplesCheck.Checked)

	lang := sd.languageSelect.Selected
	if lang != "" && lang != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(lang)
		if sd.onLanguageChange != nil {
			sd.onLanguageChange(lang)
		}
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved)+"\n"+sd.localization.GetText(KeyRestartRequired),
		sd.window,
	)
}
