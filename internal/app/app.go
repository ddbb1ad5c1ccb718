// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/MKhiriev/augur-config/internal/builder"
	"github.com/MKhiriev/augur-config/internal/config"
	"github.com/MKhiriev/augur-config/internal/credentials"
	"github.com/MKhiriev/augur-config/internal/document"
	"github.com/MKhiriev/augur-config/internal/logger"
	"github.com/MKhiriev/augur-config/internal/prompt"
)

// App wires settings, the section builder and the operator prompts for a
// single run.
type App struct {
	settings *config.Settings
	builder  *builder.Builder
	prompter prompt.Prompter
	console  io.Writer
	log      *logger.Logger
}

// NewApp returns an App. Every argument is required.
func NewApp(settings *config.Settings, b *builder.Builder, prompter prompt.Prompter, console io.Writer, log *logger.Logger) (*App, error) {
	switch {
	case settings == nil:
		return nil, fmt.Errorf("%w: settings", ErrNilDependency)
	case b == nil:
		return nil, fmt.Errorf("%w: builder", ErrNilDependency)
	case prompter == nil:
		return nil, fmt.Errorf("%w: prompter", ErrNilDependency)
	case console == nil:
		return nil, fmt.Errorf("%w: console", ErrNilDependency)
	case log == nil:
		return nil, fmt.Errorf("%w: logger", ErrNilDependency)
	}

	return &App{
		settings: settings,
		builder:  b,
		prompter: prompter,
		console:  console,
		log:      log.WithComponent("app"),
	}, nil
}

// Run generates the configuration file.
//
// Declining to overwrite an existing file is not an error. A failed write is
// reported on the console and only returned when StrictWrite is set.
func (a *App) Run(ctx context.Context) error {
	proceed, err := a.confirmOverwrite(ctx)
	if err != nil {
		return err
	}
	if !proceed {
		a.println(msgExiting)
		a.log.Info().Str("path", a.settings.OutputPath).Msg("existing file kept")
		return nil
	}

	a.println(msgBeginning)

	doc, err := a.build(ctx)
	if err != nil {
		return err
	}

	if err = doc.Write(a.settings.OutputPath); err != nil {
		a.println(msgWriteFailed + err.Error())
		a.log.Error().Err(err).Str("path", a.settings.OutputPath).Msg("write failed")
		if a.settings.StrictWrite {
			return err
		}
		return nil
	}

	a.println(msgCreated)
	a.log.Info().
		Str("path", a.settings.OutputPath).
		Strs("sections", doc.Keys()).
		Msg("configuration written")
	return nil
}

func (a *App) build(ctx context.Context) (*document.Document, error) {
	doc := document.New()

	a.builder.Cache(doc)

	creds, err := credentials.Load(a.settings.CredentialsPath)
	if err != nil {
		a.log.Error().Err(err).Msg("error loading credentials")
		return nil, err
	}
	if err = a.builder.Database(doc, creds); err != nil {
		return nil, fmt.Errorf("%s: %w", a.settings.CredentialsPath, err)
	}

	a.builder.Server(doc)

	if a.settings.Prompts.GHTorrent {
		if err = a.builder.GHTorrent(ctx, doc); err != nil {
			return nil, err
		}
	}
	if a.settings.Prompts.Facade {
		if err = a.builder.Facade(ctx, doc); err != nil {
			return nil, err
		}
	}

	a.builder.ApplyDefaults(doc)
	return doc, nil
}

// confirmOverwrite reports whether the run may go on. It asks only when the
// output file already exists and AssumeYes is off.
func (a *App) confirmOverwrite(ctx context.Context) (bool, error) {
	_, err := os.Stat(a.settings.OutputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrStatOutputFile, a.settings.OutputPath, err)
	}

	a.println(msgAlreadyExists)
	if a.settings.AssumeYes {
		a.log.Debug().Str("path", a.settings.OutputPath).Msg("overwrite assumed")
		return true, nil
	}

	return a.prompter.Confirm(ctx, msgRewrite)
}

func (a *App) println(line string) {
	fmt.Fprintln(a.console, line)
}
