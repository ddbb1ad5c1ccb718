package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// SettingsJSON is the layout of the optional JSON settings file.
type SettingsJSON struct {
	Output      string `json:"output,omitempty"`
	Credentials string `json:"credentials,omitempty"`

	Prompts struct {
		Facade    bool `json:"facade,omitempty"`
		GHTorrent bool `json:"ghtorrent,omitempty"`
		TUI       bool `json:"tui,omitempty"`
	} `json:"prompts,omitempty"`

	AssumeYes   bool `json:"assume_yes,omitempty"`
	StrictWrite bool `json:"strict_write,omitempty"`

	Log struct {
		Level string `json:"level,omitempty"`
		File  string `json:"file,omitempty"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg SettingsJSON
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json settings: %w", err)
	}

	cfg := &Settings{
		OutputPath:      jsonCfg.Output,
		CredentialsPath: jsonCfg.Credentials,
		Prompts: Prompts{
			Facade:    jsonCfg.Prompts.Facade,
			GHTorrent: jsonCfg.Prompts.GHTorrent,
			TUI:       jsonCfg.Prompts.TUI,
		},
		AssumeYes:   jsonCfg.AssumeYes,
		StrictWrite: jsonCfg.StrictWrite,
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		SettingsFile: "",
	}

	return cfg, nil
}
