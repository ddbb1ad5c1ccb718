// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import "errors"

var (
	// ErrWriteDocument wraps every failure to persist a document to disk
	// (missing directory, permissions, full disk).
	ErrWriteDocument = errors.New("error writing configuration document")
	// ErrEncodeDocument indicates that a section body could not be encoded
	// as JSON.
	ErrEncodeDocument = errors.New("error encoding configuration document")
)
