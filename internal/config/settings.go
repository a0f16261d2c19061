package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeyAutosaveInterval = "autosave_interval_seconds"
	KeyMirrorLegacyKeys = "mirror_legacy_keys"
	KeySampleCatalog    = "show_sample_catalog"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultAutosaveInterval = 10
	DefaultMirrorLegacyKeys = true
	DefaultSampleCatalog    = false
)

// Autosave interval bounds, in seconds
const (
	MinAutosaveInterval = 1
	MaxAutosaveInterval = 300
)

// Settings manages application configuration
type Settings struct {
	app      fyne.App
	defaults LaunchOptions
}

// NewSettings creates a new settings manager with built-in defaults
func NewSettings(app fyne.App) *Settings {
	return NewSettingsWithDefaults(app, DefaultLaunchOptions())
}

// NewSettingsWithDefaults creates a settings manager whose unset values fall
// back to the given launch options instead of the built-in defaults
func NewSettingsWithDefaults(app fyne.App, defaults LaunchOptions) *Settings {
	return &Settings{app: app, defaults: defaults}
}

// Preferences exposes the underlying preference store
func (s *Settings) Preferences() fyne.Preferences {
	return s.app.Preferences()
}

// GetAutosaveInterval returns how often state is saved in the background
func (s *Settings) GetAutosaveInterval() time.Duration {
	seconds := s.app.Preferences().Int(KeyAutosaveInterval)
	if seconds <= 0 {
		seconds = clampInterval(s.defaults.AutosaveSeconds)
	}
	return time.Duration(seconds) * time.Second
}

// SetAutosaveInterval sets the background save interval in seconds
func (s *Settings) SetAutosaveInterval(seconds int) {
	s.app.Preferences().SetInt(KeyAutosaveInterval, clampInterval(seconds))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		lang = s.defaults.Language
		if lang == "" {
			lang = DefaultLanguage
		}
		s.SetLanguage(lang)
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMirrorLegacyKeys returns whether every save also writes the redundant
// legacy encodings next to the authoritative keys
func (s *Settings) GetMirrorLegacyKeys() bool {
	return s.app.Preferences().BoolWithFallback(KeyMirrorLegacyKeys, s.defaults.MirrorLegacyKeys)
}

// SetMirrorLegacyKeys toggles writing of the redundant legacy encodings
func (s *Settings) SetMirrorLegacyKeys(mirror bool) {
	s.app.Preferences().SetBool(KeyMirrorLegacyKeys, mirror)
}

// GetSampleCatalog returns whether the built-in sample catalog is shown
func (s *Settings) GetSampleCatalog() bool {
	return s.app.Preferences().BoolWithFallback(KeySampleCatalog, s.defaults.SampleCatalog)
}

// SetSampleCatalog toggles the built-in sample catalog. Takes effect on the
// next launch.
func (s *Settings) SetSampleCatalog(show bool) {
	s.app.Preferences().SetBool(KeySampleCatalog, show)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}

func clampInterval(seconds int) int {
	if seconds < MinAutosaveInterval {
		return MinAutosaveInterval
	}
	if seconds > MaxAutosaveInterval {
		return MaxAutosaveInterval
	}
	return seconds
}
