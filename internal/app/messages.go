// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs one augur.config.json generation: it guards an existing
// file, drives the section builder in order, and writes the result.
//
// All msg* constants are the console lines an operator sees during a run.
// The installer scripts grep for some of them, so the wording is fixed.
package app

const (
	msgAlreadyExists = "augur.config.json already exists!"

	// msgRewrite is shown as a yes/no question; only y or Y means yes.
	msgRewrite = "Do you want to rewrite it? (Y/N): "

	msgExiting = "Exiting..."

	// msgBeginning is followed by a blank line.
	msgBeginning = "Beginning 'augur.config.json' creation process...\n"

	msgCreated = "augur.config.json successfully created"

	// msgWriteFailed is followed by the error text on the same line.
	msgWriteFailed = "Error writing augur.config.json "
)
