// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the operator prompts as small bubbletea programs,
// one per question, for terminals where a richer input line is wanted.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/augur-config/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompter asks each question in its own bubbletea program reading from in
// and rendering to out. It satisfies prompt.Prompter.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter returns a Prompter bound to the given terminal streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Ask shows question with fallback as placeholder and returns the typed
// value, or fallback when nothing was typed.
func (p *Prompter) Ask(ctx context.Context, question, fallback string) (string, error) {
	final, err := p.run(ctx, newQuestionModel(question, fallback))
	if err != nil {
		return "", err
	}

	result, ok := final.(questionModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quit {
		logger.FromContext(ctx).Debug().Str("question", question).Msg("prompt aborted")
		return "", ErrUserQuit
	}

	return result.answer(), nil
}

// Confirm shows question and waits for y or n.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	final, err := p.run(ctx, newConfirmModel(question))
	if err != nil {
		return false, err
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quit {
		logger.FromContext(ctx).Debug().Str("question", question).Msg("prompt aborted")
		return false, ErrUserQuit
	}

	return result.yes, nil
}

func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("prompt program failed")
		return nil, fmt.Errorf("error running prompt: %w", err)
	}
	return final, nil
}
