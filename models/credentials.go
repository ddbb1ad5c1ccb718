// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Credentials is the database credentials record handed to the builder by the
// installer. Values are kept as raw JSON so they are written to the Database
// section exactly as supplied. A nil field means the key was absent; a key
// present with a JSON null holds the literal "null".
type Credentials struct {
	Database json.RawMessage `json:"database" validate:"required"`
	Host     json.RawMessage `json:"host" validate:"required"`
	Port     json.RawMessage `json:"port" validate:"required"`
	User     json.RawMessage `json:"user" validate:"required"`
	Password json.RawMessage `json:"password" validate:"required"`
	Key      json.RawMessage `json:"key" validate:"required"`
	ZombieID json.RawMessage `json:"zombie_id" validate:"required"`
}
