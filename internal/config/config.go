// SPDX-License-Identifier: EPL-2.0

// Package config loads the sndfile command configuration from an optional
// YAML file and SNDFILE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root command configuration.
type Config struct {
	// Log holds logging configuration
	Log LogConfig `mapstructure:"log"`

	// Codecs selects the optional readers registered after the built-ins.
	Codecs CodecConfig `mapstructure:"codecs"`

	// Convert tunes the convert command.
	Convert ConvertConfig `mapstructure:"convert"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format: console or json
	Format string `mapstructure:"format"`
	// Outputs: stdout, stderr, or file paths
	Outputs []string `mapstructure:"outputs"`

	// Rotation controls file rotation when writing to files
	Rotation RotationConfig `mapstructure:"rotation"`
	// Development toggles development-friendly logging options
	Development bool `mapstructure:"development"`
}

// RotationConfig controls log file rotation for file outputs.
type RotationConfig struct {
	Enable     bool `mapstructure:"enable"`
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

type CodecConfig struct {
	// Extra lists optional reader names: mp3, aiff.
	Extra []string `mapstructure:"extra"`
}

type ConvertConfig struct {
	// ChunkSamples is the number of samples copied per read.
	ChunkSamples int `mapstructure:"chunk_samples"`
}

// ExtraCodecs are the reader names accepted in codecs.extra.
var ExtraCodecs = []string{"mp3", "aiff"}

// Default returns a Config populated with the command defaults.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:   "warn",
			Format:  "console",
			Outputs: []string{"stderr"},
			Rotation: RotationConfig{
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
		Codecs: CodecConfig{
			Extra: slices.Clone(ExtraCodecs),
		},
		Convert: ConvertConfig{
			ChunkSamples: 8192,
		},
	}
}

// Load reads configuration from path when it is not empty, otherwise from
// $SNDFILE_CONFIG or a sndfile.yaml found in the working directory or
// ~/.config/sndfile. A missing file in the search locations is not an error.
// Environment variables use the prefix SNDFILE with `.` replaced by `_`,
// e.g. SNDFILE_LOG_LEVEL=debug.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SNDFILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// seed defaults for viper so env-only configs work
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.outputs", cfg.Log.Outputs)
	v.SetDefault("log.development", cfg.Log.Development)
	v.SetDefault("log.rotation.enable", cfg.Log.Rotation.Enable)
	v.SetDefault("log.rotation.max_size_mb", cfg.Log.Rotation.MaxSizeMB)
	v.SetDefault("log.rotation.max_backups", cfg.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age_days", cfg.Log.Rotation.MaxAgeDays)
	v.SetDefault("log.rotation.compress", cfg.Log.Rotation.Compress)
	v.SetDefault("codecs.extra", cfg.Codecs.Extra)
	v.SetDefault("convert.chunk_samples", cfg.Convert.ChunkSamples)

	if path == "" {
		path = os.Getenv("SNDFILE_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sndfile")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "sndfile"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Decode into a zero Config: mapstructure never shrinks a prefilled slice.
	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := loaded.Validate(); err != nil {
		return nil, err
	}
	return loaded, nil
}

// Validate normalizes c and checks every value against its allowed set.
// Callers that override loaded values run it again.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch c.Log.Format {
	case "":
		c.Log.Format = "console"
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	if len(c.Log.Outputs) == 0 {
		c.Log.Outputs = []string{"stderr"}
	}

	for i, name := range c.Codecs.Extra {
		name = strings.ToLower(strings.TrimSpace(name))
		if !slices.Contains(ExtraCodecs, name) {
			return fmt.Errorf("%w: unknown codec %q in codecs.extra", ErrInvalidConfig, name)
		}
		c.Codecs.Extra[i] = name
	}

	if c.Convert.ChunkSamples <= 0 {
		return fmt.Errorf("%w: convert.chunk_samples must be positive", ErrInvalidConfig)
	}
	return nil
}

// ErrInvalidConfig reports a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("invalid configuration")
