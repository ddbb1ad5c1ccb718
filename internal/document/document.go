// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/google/renameio/v2"
)

// indent matches the four-space indentation the consuming application's
// tooling has always produced.
const indent = "    "

// Document is an ordered mapping from section name to section body.
//
// A Document is owned by a single run of the builder and is not safe for
// concurrent use.
type Document struct {
	order    []string
	sections map[string]any
}

// New returns an empty Document.
func New() *Document {
	return &Document{
		order:    make([]string, 0, 10),
		sections: make(map[string]any, 10),
	}
}

// Set stores body under name. Overwriting an existing section keeps its
// original position.
func (d *Document) Set(name string, body any) {
	if _, ok := d.sections[name]; !ok {
		d.order = append(d.order, name)
	}
	d.sections[name] = body
}

// Has reports whether a section called name exists.
func (d *Document) Has(name string) bool {
	_, ok := d.sections[name]
	return ok
}

// Get returns the body stored under name.
func (d *Document) Get(name string) (any, bool) {
	body, ok := d.sections[name]
	return body, ok
}

// Keys returns section names in insertion order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	return keys
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.order)
}

// MarshalJSON encodes the document as a JSON object whose keys follow
// insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, name := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(name); err != nil {
			return nil, fmt.Errorf("%w: section name %q: %w", ErrEncodeDocument, name, err)
		}
		buf.WriteByte(':')
		if err := enc.Encode(d.sections[name]); err != nil {
			return nil, fmt.Errorf("%w: section %q: %w", ErrEncodeDocument, name, err)
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Encode writes the document to w as JSON indented with four spaces. Non-ASCII
// characters are written as \u escapes and the output carries no trailing
// newline, matching the files the Augur installer has always produced.
func (d *Document) Encode(w io.Writer) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeDocument, err)
	}

	_, err := w.Write(escapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))))
	return err
}

// Write atomically replaces the file at path with the encoded document. The
// data is synced before the rename, so a crash leaves either the old file or
// the new one. A symlink at path is followed and its target replaced. An
// existing file keeps its permissions; a new one is created with mode 0644.
func (d *Document) Write(path string) error {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	target, err := resolveSymlink(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	err = renameio.WriteFile(target, buf.Bytes(), 0o644,
		renameio.WithTempDir(filepath.Dir(target)),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	return nil
}

// resolveSymlink returns the file a symlink at path points to, or path itself
// when it is not a symlink or does not exist yet.
func resolveSymlink(path string) (string, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return path, nil
	}
	return filepath.EvalSymlinks(path)
}

// escapeNonASCII rewrites every non-ASCII rune as a lowercase \uXXXX escape,
// using a surrogate pair above U+FFFF. encoding/json only emits non-ASCII
// bytes inside strings, so the result stays valid JSON.
func escapeNonASCII(data []byte) []byte {
	if !slices.ContainsFunc(data, func(b byte) bool { return b >= utf8.RuneSelf }) {
		return data
	}

	out := make([]byte, 0, len(data)+32)
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		switch {
		case r < utf8.RuneSelf:
			out = append(out, byte(r))
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			out = fmt.Appendf(out, `\u%04x\u%04x`, r1, r2)
		default:
			out = fmt.Appendf(out, `\u%04x`, r)
		}
	}
	return out
}
