// Package config holds CLI configuration, loaded from defaults, an
// optional config file, and HOST_RUNTIME_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	fileName  = "host-runtime"
	envPrefix = "HOST_RUNTIME"
)

// Settings holds all CLI configuration.
type Settings struct {
	// Output settings
	Format     string // "json", "yaml" or "text"
	OutputFile string // empty = stdout
	NoColor    bool

	// Detection input
	GlobalsFile string // empty = live ambient namespace

	// Logging
	LogLevel string
}

// DefaultSettings returns the default configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Format:     "text",
		OutputFile: "",
		NoColor:    false,
		LogLevel:   "error",
	}
}

// LoadSettings builds settings from defaults, an optional
// host-runtime.yaml in the working directory, and environment overrides
// (HOST_RUNTIME_FORMAT, HOST_RUNTIME_NO_COLOR, ...).
func LoadSettings() (*Settings, error) {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", defaults.Format)
	v.SetDefault("output-file", defaults.OutputFile)
	v.SetDefault("no-color", defaults.NoColor)
	v.SetDefault("globals-file", defaults.GlobalsFile)
	v.SetDefault("log-level", defaults.LogLevel)

	// A missing config file is fine; a malformed one is not.
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	settings := &Settings{
		Format:      v.GetString("format"),
		OutputFile:  v.GetString("output-file"),
		NoColor:     v.GetBool("no-color"),
		GlobalsFile: v.GetString("globals-file"),
		LogLevel:    v.GetString("log-level"),
	}
	return settings, nil
}

// ParseLogLevel converts a string log level to slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelError, fmt.Errorf("invalid log level: %s", level)
	}
}
