// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable stands in for build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the version metadata injected into the augur-config binary
// with -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns build metadata with empty values replaced by "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.commit) }

// String formats the metadata for --version output.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (date: %s, commit: %s)", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
