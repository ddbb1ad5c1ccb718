// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged settings before a run starts.
func (s *Settings) validate() error {
	if strings.TrimSpace(s.OutputPath) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidPathSettings)
	}
	if strings.TrimSpace(s.CredentialsPath) == "" {
		return fmt.Errorf("%w: credentials path is empty", ErrInvalidPathSettings)
	}

	if _, err := zerolog.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogSettings, err)
	}

	return nil
}
