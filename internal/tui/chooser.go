// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2002hackerr/movie-player/internal/shell"
)

const (
	defaultListWidth = 48
	// rows besides the list itself: header, help and margins
	chromeHeight = 5
)

// Action represents the user's action in a prompt.
type Action int

const (
	// ActionNone indicates no action was taken.
	ActionNone Action = iota
	// ActionSelected indicates the user selected an item or submitted text.
	ActionSelected
	// ActionStopped indicates the user left the menu.
	ActionStopped
)

type optionItem struct {
	shell.Option
}

func (i optionItem) FilterValue() string {
	return i.Label
}

type optionDelegate struct{}

func (d optionDelegate) Height() int                         { return 1 }
func (d optionDelegate) Spacing() int                        { return 0 }
func (d optionDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d optionDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	opt, ok := item.(optionItem)
	if !ok {
		return
	}

	line := lipgloss.JoinHorizontal(lipgloss.Left, keyStyle.Render(fmt.Sprintf("%2s.", opt.Key)), " ", opt.Label)
	style := itemStyle
	if idx == m.Index() {
		style = selectedItemStyle
	}
	_, _ = fmt.Fprint(w, style.Render(line))
}

type chooserModel struct {
	list   list.Model
	title  string
	action Action
	choice string
}

func newChooserModel(menu shell.Menu) *chooserModel {
	items := make([]list.Item, len(menu.Options))
	for i, opt := range menu.Options {
		items[i] = optionItem{Option: opt}
	}

	l := list.New(items, optionDelegate{}, defaultListWidth, len(items))
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &chooserModel{
		list:   l,
		title:  menu.Title,
		action: ActionNone,
	}
}

func (m *chooserModel) Init() tea.Cmd { return nil }

func (m *chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(optionItem); ok {
				m.action = ActionSelected
				m.choice = selected.Key
				return m, tea.Quit
			}
		case "ctrl+c", "q", "esc":
			m.action = ActionStopped
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := len(m.list.Items())
		if available := msg.Height - chromeHeight; available > 0 && available < height {
			height = available
		}
		m.list.SetSize(clamp(defaultListWidth, msg.Width-4, 20), max(height, 1))
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *chooserModel) View() string {
	header := headerStyle.Render(m.title)
	help := helpStyle.Render("Up/Down navigate | Enter select | q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), help)
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
