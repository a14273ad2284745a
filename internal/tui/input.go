package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type inputModel struct {
	input  textinput.Model
	action Action
}

func newInputModel(prompt string) *inputModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(strings.TrimSpace(prompt)) + " "
	ti.CharLimit = 0 // unlimited, as with line prompts
	ti.Width = defaultListWidth
	ti.Focus()

	return &inputModel{input: ti, action: ActionNone}
}

func (m *inputModel) Init() tea.Cmd { return textinput.Blink }

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.action = ActionSelected
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.action = ActionStopped
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	help := helpStyle.Render("Enter submit | Esc quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.input.View(), help)
}

// Value returns the submitted text.
func (m *inputModel) Value() string {
	return m.input.Value()
}
