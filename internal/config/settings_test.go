package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
	if settings.Preferences() != app.Preferences() {
		t.Error("Settings should expose the app preferences")
	}
}

func TestAutosaveInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	interval := settings.GetAutosaveInterval()
	if interval != DefaultAutosaveInterval*time.Second {
		t.Errorf("Expected default interval %ds, got %v", DefaultAutosaveInterval, interval)
	}

	// Test setting custom value
	settings.SetAutosaveInterval(30)
	if settings.GetAutosaveInterval() != 30*time.Second {
		t.Errorf("Expected interval 30s, got %v", settings.GetAutosaveInterval())
	}

	// Test boundary values
	settings.SetAutosaveInterval(0) // Should be clamped to 1
	if settings.GetAutosaveInterval() != time.Second {
		t.Error("Autosave interval should be clamped to minimum 1s")
	}

	settings.SetAutosaveInterval(1000) // Should be clamped to 300
	if settings.GetAutosaveInterval() != MaxAutosaveInterval*time.Second {
		t.Error("Autosave interval should be clamped to maximum 300s")
	}
}

func TestAutosaveInterval_LaunchDefault(t *testing.T) {
	app := test.NewApp()
	defaults := DefaultLaunchOptions()
	defaults.AutosaveSeconds = 45
	settings := NewSettingsWithDefaults(app, defaults)

	if settings.GetAutosaveInterval() != 45*time.Second {
		t.Errorf("Expected launch default 45s, got %v", settings.GetAutosaveInterval())
	}

	// A saved preference wins over the launch default
	settings.SetAutosaveInterval(5)
	if settings.GetAutosaveInterval() != 5*time.Second {
		t.Errorf("Expected saved interval 5s, got %v", settings.GetAutosaveInterval())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("es")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "es" {
		t.Errorf("Expected language 'es', got %s", retrievedLang)
	}
}

func TestMirrorLegacyKeys(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMirrorLegacyKeys() != DefaultMirrorLegacyKeys {
		t.Errorf("Expected default mirror flag %v", DefaultMirrorLegacyKeys)
	}

	settings.SetMirrorLegacyKeys(false)
	if settings.GetMirrorLegacyKeys() {
		t.Error("Expected mirror flag to be false after disabling")
	}
}

func TestSampleCatalog(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetSampleCatalog() {
		t.Error("Sample catalog should be disabled by default")
	}

	settings.SetSampleCatalog(true)
	if !settings.GetSampleCatalog() {
		t.Error("Expected sample catalog to be enabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "es"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
