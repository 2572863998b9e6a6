/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/llm-d/numeral-converter/internal/logging"
)

// EnvPrefix prefixes environment variables read by Load, e.g. NUMERAL_LOG_LEVEL.
const EnvPrefix = "NUMERAL"

// Flag and key names.
const (
	KeyConfig      = "config"
	KeyLogLevel    = "log-level"
	KeyDefinitions = "definitions"
	KeyMetrics     = "metrics"
)

// Config holds the settings of the numeral CLI.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string
	// Definitions is an optional path to a YAML file of extra system definitions.
	Definitions string
	// Metrics dumps conversion metrics in Prometheus text format when a command finishes.
	Metrics bool
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	return nil
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "path to a config file (yaml, json or toml)")
	fs.String(KeyLogLevel, logging.DefaultLevel, "log level: trace, debug, info, warn, error")
	fs.String(KeyDefinitions, "", "path to a YAML file with additional numeral system definitions")
	fs.Bool(KeyMetrics, false, "print conversion metrics in Prometheus text format to stderr")
}

// Load resolves the configuration. Precedence, highest first: flags explicitly set,
// environment variables, the config file, flag defaults.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		LogLevel:    v.GetString(KeyLogLevel),
		Definitions: v.GetString(KeyDefinitions),
		Metrics:     v.GetBool(KeyMetrics),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
