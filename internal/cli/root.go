// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli defines the augur-config command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/augur-config/internal/app"
	"github.com/MKhiriev/augur-config/internal/builder"
	"github.com/MKhiriev/augur-config/internal/config"
	"github.com/MKhiriev/augur-config/internal/logger"
	"github.com/MKhiriev/augur-config/internal/prompt"
	"github.com/MKhiriev/augur-config/internal/tui"
	"github.com/MKhiriev/augur-config/models"
	"github.com/spf13/cobra"
)

const loggerRole = "augur-config"

const versionTemplate = `{{.Name}} {{.Version}}
`

// NewRootCommand returns the augur-config command. The command reads answers
// from cmd.InOrStdin and prints to cmd.OutOrStdout, so callers can redirect
// both.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "augur-config",
		Short: "Generate augur.config.json for an Augur installation",
		Long: `Generates augur.config.json from the database credentials left by the
installer, optional interactive answers for Facade and GHTorrent, and
built-in defaults for every other section.`,
		Version:       buildInfo.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}
	cmd.SetVersionTemplate(versionTemplate)
	config.RegisterFlags(cmd.Flags())

	return cmd
}

// Execute runs the root command and exits with status 1 on failure.
func Execute(buildInfo models.AppBuildInfo) {
	cmd := NewRootCommand(buildInfo)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	settings, err := config.GetSettings(cmd.Flags())
	if err != nil {
		return fmt.Errorf("error getting settings: %w", err)
	}

	log, err := logger.NewCLILogger(loggerRole, logger.Options{
		Level: settings.Log.Level,
		File:  settings.Log.File,
	})
	if err != nil {
		return err
	}

	console := cmd.OutOrStdout()
	prompter := newPrompter(settings, cmd.InOrStdin(), console)

	a, err := app.NewApp(settings, builder.New(console, prompter, log), prompter, console, log)
	if err != nil {
		return err
	}

	log.Debug().
		Str("output", settings.OutputPath).
		Str("credentials", settings.CredentialsPath).
		Bool("facade", settings.Prompts.Facade).
		Bool("ghtorrent", settings.Prompts.GHTorrent).
		Msg("starting run")

	return a.Run(log.WithContext(cmd.Context()))
}

func newPrompter(settings *config.Settings, in io.Reader, out io.Writer) prompt.Prompter {
	if settings.Prompts.TUI {
		return tui.NewPrompter(in, out)
	}
	return prompt.NewConsole(in, out)
}
