// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credentials loads the database credentials record the installer
// leaves behind and checks that every required key is present.
//
// Only presence is checked: an empty string or a JSON null is a valid value
// and is copied into the configuration as-is.
package credentials

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/MKhiriev/augur-config/models"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json keys instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads the credentials record at path. Files ending in ".toml" are
// decoded as TOML, everything else as JSON. Numbers in JSON files are kept
// verbatim.
//
// Load does not check for missing keys; call [Validate] for that.
func Load(path string) (models.Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("%w %s: %w", ErrReadCredentials, path, err)
	}

	var fields map[string]json.RawMessage
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		fields, err = decodeTOML(data)
	} else {
		fields, err = decodeJSON(data)
	}
	if err != nil {
		return models.Credentials{}, fmt.Errorf("%w %s: %w", ErrDecodeCredentials, path, err)
	}

	return fromFields(fields), nil
}

// Validate returns a [*MissingFieldError] naming the first required key
// absent from creds, in the order database, host, port, user, password,
// key, zombie_id.
func Validate(creds models.Credentials) error {
	err := validate.Struct(creds)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return &MissingFieldError{Field: validationErrs[0].Field()}
	}

	return err
}

func decodeJSON(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("extra data after the JSON object")
	}
	if fields == nil {
		return nil, errors.New("credentials must be a mapping")
	}
	return fields, nil
}

func decodeTOML(data []byte) (map[string]json.RawMessage, error) {
	var values map[string]any
	if _, err := toml.Decode(string(data), &values); err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage, len(values))
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		fields[key] = raw
	}
	return fields, nil
}

func fromFields(fields map[string]json.RawMessage) models.Credentials {
	return models.Credentials{
		Database: fields["database"],
		Host:     fields["host"],
		Port:     fields["port"],
		User:     fields["user"],
		Password: fields["password"],
		Key:      fields["key"],
		ZombieID: fields["zombie_id"],
	}
}
