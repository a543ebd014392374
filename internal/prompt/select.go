package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Choice is one selectable entry of a Select prompt.
type Choice struct {
	Label string
	// Color names the label style; see Style.
	Color string
	// Hint is optional dimmed text shown after the label.
	Hint string
}

type selectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Choose key.Binding
	Cancel key.Binding
}

var selectKeys = selectKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "down")),
	Home:   key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	End:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "back")),
}

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	canceledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// selectModel is a single-choice list. It quits on selection or cancel.
type selectModel struct {
	title    string
	choices  []Choice
	cursor   int
	chosen   int
	canceled bool
	done     bool
}

func newSelectModel(title string, choices []Choice) selectModel {
	return selectModel{title: title, choices: choices, chosen: -1}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, selectKeys.Cancel):
		m.canceled = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, selectKeys.Choose):
		m.chosen = m.cursor
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, selectKeys.Up):
		m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)
	case key.Matches(keyMsg, selectKeys.Down):
		m.cursor = (m.cursor + 1) % len(m.choices)
	case key.Matches(keyMsg, selectKeys.Home):
		m.cursor = 0
	case key.Matches(keyMsg, selectKeys.End):
		m.cursor = len(m.choices) - 1
	}
	return m, nil
}

func (m selectModel) View() string {
	var sb strings.Builder

	if m.done {
		sb.WriteString(m.header())
		switch {
		case m.canceled:
			sb.WriteString(" " + canceledStyle.Render("canceled"))
		case m.chosen >= 0:
			sb.WriteString(" " + doneStyle.Render(m.choices[m.chosen].Label))
		}
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(m.header() + " " + hintStyle.Render("(esc to go back)") + "\n")
	for i, choice := range m.choices {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("❯ ")
		}
		sb.WriteString(pointer + Style(choice.Color).Render(choice.Label))
		if choice.Hint != "" {
			sb.WriteString(" " + hintStyle.Render(choice.Hint))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m selectModel) header() string {
	return questionStyle.Render("?") + " " + titleStyle.Render(m.title)
}
