// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentialField is matched by every [MissingFieldError].
	ErrMissingCredentialField = errors.New("missing credential field")
	// ErrReadCredentials indicates that the credentials file could not be
	// opened or read.
	ErrReadCredentials = errors.New("error reading credentials file")
	// ErrDecodeCredentials indicates that the credentials file is not a
	// JSON or TOML mapping.
	ErrDecodeCredentials = errors.New("error decoding credentials file")
)

// MissingFieldError names the required credential key that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingCredentialField, e.Field)
}

// Unwrap lets errors.Is match [ErrMissingCredentialField].
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingCredentialField
}
