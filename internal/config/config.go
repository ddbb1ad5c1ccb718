// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// Default paths are relative to util/scripts/install, where the installer
// runs the builder.
const (
	DefaultOutputPath      = "../../../augur.config.json"
	DefaultCredentialsPath = "temp.config.json"
	DefaultLogLevel        = "info"
)

// envPrefix is applied to every environment variable lookup.
const envPrefix = "AUGUR_CONFIG_"

// Settings is the top-level settings container for an augur-config run.
//
// Struct tags:
//   - envPrefix - prefix applied to nested env tag lookups (caarlos0/env).
//   - env       - environment variable name, after the global AUGUR_CONFIG_
//     prefix.
type Settings struct {
	// OutputPath is where augur.config.json is written.
	// Env: AUGUR_CONFIG_OUTPUT
	OutputPath string `env:"OUTPUT"`

	// CredentialsPath is the JSON or TOML credentials record left by the
	// installer.
	// Env: AUGUR_CONFIG_CREDENTIALS
	CredentialsPath string `env:"CREDENTIALS"`

	// Prompts selects which interactive sections run and how.
	Prompts Prompts

	// AssumeYes overwrites an existing output file without asking.
	// Env: AUGUR_CONFIG_YES
	AssumeYes bool `env:"YES"`

	// StrictWrite turns a failure to write the output file into a failed
	// run. By default the failure is reported and the run still succeeds.
	// Env: AUGUR_CONFIG_STRICT_WRITE
	StrictWrite bool `env:"STRICT_WRITE"`

	// Log controls diagnostic logging.
	Log Log `envPrefix:"LOG_"`

	// SettingsFile is the optional path to a JSON settings file merged
	// below flags and environment.
	// Env: AUGUR_CONFIG_SETTINGS
	SettingsFile string `env:"SETTINGS"`
}

// Prompts toggles the interactive sections.
type Prompts struct {
	// Facade asks for the Facade database connection and project list.
	// Env: AUGUR_CONFIG_FACADE
	Facade bool `env:"FACADE"`

	// GHTorrent asks for the GHTorrent database connection.
	// Env: AUGUR_CONFIG_GHTORRENT
	GHTorrent bool `env:"GHTORRENT"`

	// TUI renders prompts with the terminal UI instead of plain lines.
	// Env: AUGUR_CONFIG_TUI
	TUI bool `env:"TUI"`
}

// Log holds diagnostic logging settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: AUGUR_CONFIG_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File, when set, receives log lines instead of stderr.
	// Env: AUGUR_CONFIG_LOG_FILE
	File string `env:"FILE"`
}

// GetSettings loads, merges, and validates the settings from flags (already
// parsed into fs), the environment, and the optional JSON settings file,
// then fills the remaining gaps with defaults.
func GetSettings(fs *pflag.FlagSet) (*Settings, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		build()
}

func defaultSettings() *Settings {
	return &Settings{
		OutputPath:      DefaultOutputPath,
		CredentialsPath: DefaultCredentialsPath,
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
