package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// questionModel asks for a single value. An empty submission selects the
// fallback.
type questionModel struct {
	question string
	fallback string
	input    textinput.Model
	answered bool
	quit     bool
}

func newQuestionModel(question, fallback string) questionModel {
	input := textinput.New()
	input.Placeholder = fallback
	input.Width = 50
	input.Focus()

	return questionModel{
		question: strings.TrimSpace(question),
		fallback: fallback,
		input:    input,
	}
}

func (m questionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m questionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.submit):
			m.answered = true
			return m, tea.Quit
		case key.Matches(k, keys.quit):
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m questionModel) View() string {
	if m.answered {
		return questionStyle.Render(m.question) + " " + answerStyle.Render(m.answer()) + "\n"
	}
	if m.quit {
		return questionStyle.Render(m.question) + "\n"
	}

	return questionStyle.Render(m.question) + " " + m.input.View() + "\n" +
		helpStyle.Render("enter accept  esc quit") + "\n"
}

func (m questionModel) answer() string {
	if v := m.input.Value(); v != "" {
		return v
	}
	return m.fallback
}
