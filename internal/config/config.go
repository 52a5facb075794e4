// Package config loads the optional project configuration file.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds project-level defaults. Command-line flags override it.
type Config struct {
	Language    string // default language when a feature declares none
	Output      string // default output directory
	SettingsDir string // directory holding *.settings files
}

// Load reads gherkin2robotframework.yml from the working directory, with
// GHERKIN2ROBOT_* environment overrides. A missing config file yields the
// zero config.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("gherkin2robotframework")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvPrefix("GHERKIN2ROBOT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading gherkin2robotframework.yml: %w", err)
		}
	}

	return &Config{
		Language:    v.GetString("language"),
		Output:      v.GetString("output"),
		SettingsDir: v.GetString("settings_dir"),
	}, nil
}
