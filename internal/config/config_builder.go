package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type configBuilder struct {
	configs []*Settings
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Settings, 0, 4),
	}
}

// build merges the collected sources in order, so fields set by an earlier
// source are never overwritten, then fills the gaps with defaults.
func (b *configBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, cfg := range append(b.configs, defaultSettings()) {
		if err := mergo.Merge(settings, cfg); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Settings{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	flagCfg, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withJSON loads the settings file named by the first source that names
// one.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.SettingsFile != "" {
			jsonPath = cfg.SettingsFile
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
