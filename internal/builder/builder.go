// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/augur-config/internal/credentials"
	"github.com/MKhiriev/augur-config/internal/document"
	"github.com/MKhiriev/augur-config/internal/logger"
	"github.com/MKhiriev/augur-config/internal/prompt"
	"github.com/MKhiriev/augur-config/models"
)

// Builder writes the sections of an Augur configuration document.
type Builder struct {
	console  io.Writer
	prompter prompt.Prompter
	log      *logger.Logger
}

// New returns a Builder that prints status lines to console and asks
// questions through prompter.
func New(console io.Writer, prompter prompt.Prompter, log *logger.Logger) *Builder {
	return &Builder{
		console:  console,
		prompter: prompter,
		log:      log.WithComponent("builder"),
	}
}

// Cache writes the fixed file cache settings.
func (b *Builder) Cache(doc *document.Document) {
	b.status("==Setting up Cache configuration==")
	doc.Set(models.SectionCache, defaultCache())
	b.log.Debug().Str("section", models.SectionCache).Msg("section written")
}

// Database copies creds into the Database section, adds the fixed schema, and
// writes the GitHub API key placeholder. If a required credential is absent
// it returns a [*credentials.MissingFieldError] and the document is left
// untouched.
func (b *Builder) Database(doc *document.Document, creds models.Credentials) error {
	b.status("==Setting up Augur Database==")

	if err := credentials.Validate(creds); err != nil {
		b.log.Error().Err(err).Str("section", models.SectionDatabase).Msg("credentials incomplete")
		return err
	}

	doc.Set(models.SectionDatabase, models.DatabaseSection{
		Database: creds.Database,
		Host:     creds.Host,
		Port:     creds.Port,
		User:     creds.User,
		Password: creds.Password,
		Schema:   models.AugurSchema,
		Key:      creds.Key,
		ZombieID: creds.ZombieID,
	})
	doc.Set(models.SectionGitHub, models.GitHubSection{APIKey: models.GitHubAPIKeyPlaceholder})
	b.status("")

	b.log.Debug().Str("section", models.SectionDatabase).Msg("section written")
	return nil
}

// Server writes the fixed server settings.
func (b *Builder) Server(doc *document.Document) {
	b.status("==Setting up Augur Server==")
	doc.Set(models.SectionServer, defaultServer())
	b.log.Debug().Str("section", models.SectionServer).Msg("section written")
}

// Facade asks for the Facade database connection and project list. The
// project answer is split on whitespace, so a project path containing spaces
// becomes several entries.
func (b *Builder) Facade(ctx context.Context, doc *document.Document) error {
	b.status("==Setting up Facade==")

	var section models.FacadeConnection
	questions := []question{
		{text: "Enter Facade DB Host [Default: localhost]: ", fallback: "localhost", dst: &section.Host},
		{text: "Enter Facade DB Port [Default: 3306]: ", fallback: "3306", dst: &section.Port},
		{text: "Enter Facade DB Name [Default: facade]: ", fallback: "facade", dst: &section.Name},
		{text: "Enter Facade DB Username [Default: augur]: ", fallback: "augur", dst: &section.User},
		{text: "Enter Facade DB Password: ", fallback: "password", dst: &section.Pass},
	}
	if err := b.ask(ctx, questions); err != nil {
		return fmt.Errorf("error configuring %s: %w", models.SectionFacade, err)
	}

	projects, err := b.prompter.Ask(ctx, "Enter Facade Projects: ", "")
	if err != nil {
		return fmt.Errorf("error configuring %s: %w", models.SectionFacade, err)
	}
	section.Projects = splitProjects(projects)

	doc.Set(models.SectionFacade, section)
	b.status("")

	b.log.Debug().Str("section", models.SectionFacade).Int("projects", len(section.Projects)).Msg("section written")
	return nil
}

// GHTorrent asks for the GHTorrent database connection.
func (b *Builder) GHTorrent(ctx context.Context, doc *document.Document) error {
	b.status("==Setting up GHTorrent==")

	var section models.GHTorrentConnection
	questions := []question{
		{text: "Enter GHTorrent Host [Default: localhost]: ", fallback: "localhost", dst: &section.Host},
		{text: "Enter GHTorrent Port [Default: 3306]: ", fallback: "3306", dst: &section.Port},
		{text: "Enter GHTorrent Name [Default: ghtorrent]: ", fallback: "ghtorrent", dst: &section.Name},
		{text: "Enter GHTorrent Username [Default: augur]: ", fallback: "augur", dst: &section.User},
		{text: "Enter GHTorrent Password: ", fallback: "password", dst: &section.Pass},
	}
	if err := b.ask(ctx, questions); err != nil {
		return fmt.Errorf("error configuring %s: %w", models.SectionGHTorrent, err)
	}

	doc.Set(models.SectionGHTorrent, section)
	b.status("")

	b.log.Debug().Str("section", models.SectionGHTorrent).Msg("section written")
	return nil
}

// ApplyDefaults inserts the default body of every optional section that is
// not yet in doc. Sections already present are left alone, whatever their
// content, so calling it again changes nothing.
func (b *Builder) ApplyDefaults(doc *document.Document) {
	b.status("==Setting up defaults==")

	defaults := []struct {
		section string
		body    func() any
		status  string
	}{
		{models.SectionFacade, func() any { return defaultFacade() }, "Set default values for Facade..."},
		{models.SectionGHTorrent, func() any { return defaultGHTorrent() }, "Set default values for GHTorrent..."},
		{models.SectionDevelopment, func() any { return defaultDevelopment() }, "Set default values for Development..."},
		{models.SectionPlugins, func() any { return defaultPlugins() }, "Set default values for Plugins..."},
		{models.SectionHousekeeper, func() any { return defaultHousekeeper() }, "Set default values for Housekeeper..."},
		// printed without trailing dots, as Augur always has
		{models.SectionWorkers, func() any { return defaultWorkers() }, "Set default values for Workers"},
	}

	for _, d := range defaults {
		if doc.Has(d.section) {
			b.log.Debug().Str("section", d.section).Msg("section present, default skipped")
			continue
		}
		doc.Set(d.section, d.body())
		b.status(d.status)
	}

	b.status("")
}

type question struct {
	text     string
	fallback string
	dst      *string
}

func (b *Builder) ask(ctx context.Context, questions []question) error {
	for _, q := range questions {
		answer, err := b.prompter.Ask(ctx, q.text, q.fallback)
		if err != nil {
			return err
		}
		*q.dst = answer
	}
	return nil
}

// splitProjects never returns nil so that an empty answer is written as [].
func splitProjects(answer string) []string {
	projects := strings.Fields(answer)
	if projects == nil {
		return []string{}
	}
	return projects
}

func (b *Builder) status(line string) {
	fmt.Fprintln(b.console, line)
}
