// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prompt asks the operator for configuration values on a plain
// line-oriented console.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console is a [Prompter] that writes each question to out and reads one
// line of input per answer.
//
// End of input is treated as an empty answer, so piping a short file into the
// tool falls back to defaults for the remaining questions.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console reading answers from in and writing questions
// to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask writes question and returns the answer without its line terminator.
// Only an empty answer selects fallback; whitespace is kept as typed.
func (c *Console) Ask(ctx context.Context, question, fallback string) (string, error) {
	answer, err := c.readLine(ctx, question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// Confirm writes question and reports true only for "y" or "Y".
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := c.readLine(ctx, question)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

func (c *Console) readLine(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(c.out, question); err != nil {
		return "", fmt.Errorf("error writing prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// keep the next output on its own line
		fmt.Fprintln(c.out)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
