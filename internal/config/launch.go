package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// LaunchOptions are defaults read from the environment at startup. Values a
// user has saved in preferences always take precedence.
type LaunchOptions struct {
	AutosaveSeconds  int    `env:"DELVEPAD_AUTOSAVE_SECONDS" env-default:"10" env-description:"background save interval in seconds"`
	Language         string `env:"DELVEPAD_LANGUAGE" env-default:"system" env-description:"interface language code"`
	MirrorLegacyKeys bool   `env:"DELVEPAD_MIRROR_LEGACY_KEYS" env-default:"true" env-description:"write redundant legacy preference keys"`
	SampleCatalog    bool   `env:"DELVEPAD_SAMPLE_CATALOG" env-default:"false" env-description:"show the sample course catalog"`
}

// DefaultLaunchOptions returns the built-in defaults without reading the
// environment
func DefaultLaunchOptions() LaunchOptions {
	return LaunchOptions{
		AutosaveSeconds:  DefaultAutosaveInterval,
		Language:         DefaultLanguage,
		MirrorLegacyKeys: DefaultMirrorLegacyKeys,
		SampleCatalog:    DefaultSampleCatalog,
	}
}

// LoadLaunchOptions reads launch defaults from DELVEPAD_* environment variables
func LoadLaunchOptions() (LaunchOptions, error) {
	var opts LaunchOptions
	if err := cleanenv.ReadEnv(&opts); err != nil {
		return DefaultLaunchOptions(), fmt.Errorf("failed to read launch options from environment: %w", err)
	}
	return opts, nil
}
