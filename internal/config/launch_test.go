package config

import "testing"

func TestLoadLaunchOptions_Defaults(t *testing.T) {
	opts, err := LoadLaunchOptions()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts != DefaultLaunchOptions() {
		t.Errorf("Expected defaults %+v, got %+v", DefaultLaunchOptions(), opts)
	}
}

func TestLoadLaunchOptions_FromEnvironment(t *testing.T) {
	t.Setenv("DELVEPAD_AUTOSAVE_SECONDS", "25")
	t.Setenv("DELVEPAD_LANGUAGE", "es")
	t.Setenv("DELVEPAD_MIRROR_LEGACY_KEYS", "false")
	t.Setenv("DELVEPAD_SAMPLE_CATALOG", "true")

	opts, err := LoadLaunchOptions()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts.AutosaveSeconds != 25 {
		t.Errorf("Expected autosave 25, got %d", opts.AutosaveSeconds)
	}
	if opts.Language != "es" {
		t.Errorf("Expected language 'es', got %s", opts.Language)
	}
	if opts.MirrorLegacyKeys {
		t.Error("Expected mirror legacy keys to be false")
	}
	if !opts.SampleCatalog {
		t.Error("Expected sample catalog to be true")
	}
}

func TestLoadLaunchOptions_InvalidValue(t *testing.T) {
	t.Setenv("DELVEPAD_AUTOSAVE_SECONDS", "often")

	opts, err := LoadLaunchOptions()
	if err == nil {
		t.Fatal("Expected error for non-numeric interval")
	}
	if opts != DefaultLaunchOptions() {
		t.Errorf("Expected defaults on error, got %+v", opts)
	}
}
