package tui

import (
	"context"
	stdErrors "errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2002hackerr/movie-player/internal/errors"
	"github.com/2002hackerr/movie-player/internal/shell"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// withKeys replaces runProgram with one that feeds msgs to the model.
func withKeys(t *testing.T, msgs ...tea.Msg) {
	t.Helper()

	original := runProgram
	runProgram = func(m tea.Model) (tea.Model, error) {
		for _, msg := range msgs {
			m, _ = m.Update(msg)
		}
		return m, nil
	}
	t.Cleanup(func() { runProgram = original })
}

func TestChooserModel_SelectFirst(t *testing.T) {
	m := newChooserModel(shell.MainMenu)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ActionSelected, m.action)
	assert.Equal(t, "1", m.choice)
}

func TestChooserModel_Navigate(t *testing.T) {
	m := newChooserModel(shell.FetchMenu)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "2", m.choice)
}

func TestChooserModel_Stop(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := newChooserModel(shell.MainMenu)
		m.Update(msg)
		assert.Equal(t, ActionStopped, m.action, msg.String())
	}
}

func TestChooserModel_WindowSize(t *testing.T) {
	m := newChooserModel(shell.MainMenu)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 8})
	assert.Equal(t, 26, m.list.Width())
	assert.Equal(t, 3, m.list.Height())

	m.Update(tea.WindowSizeMsg{Width: 200, Height: 100})
	assert.Equal(t, defaultListWidth, m.list.Width())
	assert.Equal(t, len(shell.MainMenu.Options), m.list.Height())
}

func TestChooserModel_View(t *testing.T) {
	view := newChooserModel(shell.MainMenu).View()
	assert.Contains(t, view, "Movie Player Menu")
	assert.Contains(t, view, "List Directors")
}

func TestInputModel(t *testing.T) {
	m := newInputModel("Enter director name: ")
	for _, r := range "Ozu" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ActionSelected, m.action)
	assert.Equal(t, "Ozu", m.Value())
	assert.Contains(t, m.View(), "Enter director name:")
}

func TestInputModel_QIsText(t *testing.T) {
	m := newInputModel("Title: ")
	m.Update(keyRunes("q"))
	assert.Equal(t, ActionNone, m.action)
	assert.Equal(t, "q", m.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ActionStopped, m.action)
}

func TestPrompter_Choose(t *testing.T) {
	withKeys(t, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	choice, err := NewPrompter().Choose(context.Background(), shell.MainMenu)
	require.NoError(t, err)
	assert.Equal(t, "2", choice)
}

func TestPrompter_ChooseStopped(t *testing.T) {
	withKeys(t, keyRunes("q"))

	_, err := NewPrompter().Choose(context.Background(), shell.MainMenu)
	assert.True(t, errors.IsStopProcessingError(err))
}

func TestPrompter_Ask(t *testing.T) {
	withKeys(t, keyRunes("Late Spring"), tea.KeyMsg{Type: tea.KeyEnter})

	answer, err := NewPrompter().Ask(context.Background(), "Enter movie title: ")
	require.NoError(t, err)
	assert.Equal(t, "Late Spring", answer)
}

func TestPrompter_AskStopped(t *testing.T) {
	withKeys(t, tea.KeyMsg{Type: tea.KeyCtrlC})

	_, err := NewPrompter().Ask(context.Background(), "Enter movie title: ")
	assert.True(t, errors.IsStopProcessingError(err))
}

func TestPrompter_ProgramError(t *testing.T) {
	original := runProgram
	runProgram = func(tea.Model) (tea.Model, error) { return nil, stdErrors.New("no tty") }
	t.Cleanup(func() { runProgram = original })

	_, err := NewPrompter().Choose(context.Background(), shell.MainMenu)
	assert.EqualError(t, err, "no tty")
	_, err = NewPrompter().Ask(context.Background(), "x")
	assert.EqualError(t, err, "no tty")
}

func TestPrompter_CancelledContextSkipsProgram(t *testing.T) {
	original := runProgram
	runProgram = func(m tea.Model) (tea.Model, error) {
		t.Fatalf("program started after cancellation")
		return m, nil
	}
	t.Cleanup(func() { runProgram = original })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPrompter().Choose(ctx, shell.MainMenu)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = NewPrompter().Ask(ctx, "Enter director name: ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrompter_AskKeepsLongAnswers(t *testing.T) {
	long := strings.Repeat("Dr. Strangelove or: How I Learned to Stop Worrying and Love the Bomb ", 5)
	withKeys(t, keyRunes(long), tea.KeyMsg{Type: tea.KeyEnter})

	answer, err := NewPrompter().Ask(context.Background(), "Enter movie title: ")
	require.NoError(t, err)
	assert.Equal(t, long, answer)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 48, clamp(48, 0, 20))
	assert.Equal(t, 30, clamp(48, 30, 20))
	assert.Equal(t, 20, clamp(48, 10, 20))
}
