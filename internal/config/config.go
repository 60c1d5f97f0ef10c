// Package config reads atlas settings from .atlas.yaml, ATLAS_* environment
// variables and command line flags bound through viper.
package config

import (
	"github.com/rohanthewiz/serr"
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the atlas command.
type Config struct {
	// Root is the application root used when a scenario sets none.
	Root    string `mapstructure:"root"`
	Verbose bool   `mapstructure:"verbose"`
	// HTML is where the inspection page is written. Empty means no page.
	HTML string `mapstructure:"html"`
}

// Load reads configuration from viper, applying defaults for anything not
// set by config file, environment or flags.
func Load() (Config, error) {
	viper.SetDefault("root", "/")
	viper.SetDefault("verbose", false)
	viper.SetDefault("html", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, serr.Wrap(err, "decoding configuration")
	}
	return cfg, nil
}
