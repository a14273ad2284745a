package cmd

import (
	"context"
	"log/slog"

	"github.com/2002hackerr/movie-player/internal/shell"
	"github.com/2002hackerr/movie-player/internal/tui"
)

// MenuCmd runs the interactive menu
type MenuCmd struct {
	Plain bool `help:"Use a plain numbered prompt instead of the full-screen menu"`
}

func (m *MenuCmd) Run() error {
	return withSession(true, func(ctx context.Context, s *shell.Session) error {
		return shell.RunMenu(ctx, s, m.prompter())
	})
}

func (m *MenuCmd) prompter() shell.Prompter {
	if m.Plain || !stdinIsTerminal() {
		slog.Debug("Using plain prompts")
		return shell.NewLinePrompter(stdin, stdout)
	}
	return tui.NewPrompter()
}
