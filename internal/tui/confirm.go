package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question answered by a single key press.
type confirmModel struct {
	question string
	decided  bool
	yes      bool
	quit     bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: strings.TrimSpace(question)}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.yes):
		m.decided, m.yes = true, true
		return m, tea.Quit
	case key.Matches(k, keys.no):
		m.decided = true
		return m, tea.Quit
	case key.Matches(k, keys.quit):
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.decided {
		answer := "n"
		if m.yes {
			answer = "y"
		}
		return questionStyle.Render(m.question) + " " + answerStyle.Render(answer) + "\n"
	}

	return questionStyle.Render(m.question) + "\n" + helpStyle.Render("y yes  n no") + "\n"
}
