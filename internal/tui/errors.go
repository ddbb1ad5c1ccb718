// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned when the operator aborts a prompt with esc or
// ctrl+c.
var ErrUserQuit = errors.New("operator quit the configuration")
