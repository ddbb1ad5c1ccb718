// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	// ErrNilDependency is returned by [NewApp] when a required collaborator
	// is nil. The wrapped message names the missing argument.
	ErrNilDependency = errors.New("app dependency is nil")
	// ErrStatOutputFile indicates that the existing output file could not be
	// inspected before the overwrite question.
	ErrStatOutputFile = errors.New("error checking output file")
)
