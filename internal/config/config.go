// Package config loads run settings from file, environment and defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/invertedv/cornstats"
)

// Load builds the pipeline configuration.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (cornstats.Config, error) {
	def := cornstats.DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("CORNSTATS")
	v.AutomaticEnv()

	v.SetDefault("data_path", def.DataPath)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("output_dir", def.OutputDir)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return def, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg cornstats.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return def, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
