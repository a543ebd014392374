package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var inputKeys = struct {
	Submit key.Binding
	Cancel key.Binding
}{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// inputModel is a single-line free-text prompt.
type inputModel struct {
	title    string
	input    textinput.Model
	value    string
	canceled bool
	done     bool
}

func newInputModel(title, placeholder string) inputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Focus()
	return inputModel{title: title, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, inputKeys.Cancel):
			m.canceled = true
			m.done = true
			return m, tea.Quit
		case key.Matches(keyMsg, inputKeys.Submit):
			m.value = strings.TrimSpace(m.input.Value())
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	header := questionStyle.Render("?") + " " + titleStyle.Render(m.title) + " "
	switch {
	case m.canceled:
		return header + canceledStyle.Render("canceled") + "\n"
	case m.done:
		return header + doneStyle.Render(m.value) + "\n"
	}
	return header + m.input.View() + "\n"
}
