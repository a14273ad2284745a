package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2002hackerr/movie-player/internal/errors"
	"github.com/2002hackerr/movie-player/internal/shell"
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// Prompter implements shell.Prompter with full-screen bubbletea widgets.
type Prompter struct{}

// NewPrompter creates a Prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Choose shows menu as a navigable list and returns the chosen key.
// Ctrl+C is a key press while the program owns the terminal, so ctx is only
// checked before and after it runs.
func (p *Prompter) Choose(ctx context.Context, menu shell.Menu) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	finalModel, err := runProgram(newChooserModel(menu))
	if err != nil {
		return "", err
	}

	typed, ok := finalModel.(*chooserModel)
	if !ok {
		return "", fmt.Errorf("unexpected program result")
	}
	if typed.action != ActionSelected {
		return "", errors.NewStopProcessingError("user quit the menu")
	}
	return typed.choice, ctx.Err()
}

// Ask shows a single-line text input.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	finalModel, err := runProgram(newInputModel(prompt))
	if err != nil {
		return "", err
	}

	typed, ok := finalModel.(*inputModel)
	if !ok {
		return "", fmt.Errorf("unexpected program result")
	}
	if typed.action != ActionSelected {
		return "", errors.NewStopProcessingError("user quit the menu")
	}
	return typed.Value(), ctx.Err()
}

var _ shell.Prompter = (*Prompter)(nil)
