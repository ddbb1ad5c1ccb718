package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags_Nil verifies that a nil flag set yields empty settings.
func TestParseFlags_Nil(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, cfg)
}

// TestParseFlags_Unset verifies that unset flags leave every field empty.
func TestParseFlags_Unset(t *testing.T) {
	cfg, err := parseFlags(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, cfg)
}

// TestParseFlags_AllFields verifies that every flag maps to its field.
func TestParseFlags_AllFields(t *testing.T) {
	fs := newFlagSet(t,
		"-o", "out.json",
		"--credentials", "creds.toml",
		"--facade",
		"--ghtorrent",
		"--tui",
		"-y",
		"--strict-write",
		"--log-level", "debug",
		"--log-file", "augur-config.log",
		"-s", "settings.json",
	)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &Settings{
		OutputPath:      "out.json",
		CredentialsPath: "creds.toml",
		Prompts:         Prompts{Facade: true, GHTorrent: true, TUI: true},
		AssumeYes:       true,
		StrictWrite:     true,
		Log:             Log{Level: "debug", File: "augur-config.log"},
		SettingsFile:    "settings.json",
	}, cfg)
}

// TestParseFlags_WrongType verifies that a flag registered with another type
// is reported.
func TestParseFlags_WrongType(t *testing.T) {
	fs := pflag.NewFlagSet("augur-config", pflag.ContinueOnError)
	fs.Int(flagOutput, 0, "")
	require.NoError(t, fs.Parse([]string{"--output", "3"}))

	_, err := parseFlags(fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
}
