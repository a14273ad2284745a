package shell

import (
	"context"
	stdErrors "errors"
	"io"
	"log/slog"

	"github.com/2002hackerr/movie-player/internal/enrichment"
	"github.com/2002hackerr/movie-player/internal/errors"
)

// Option is one selectable entry of a Menu.
type Option struct {
	Key   string
	Label string
}

// Menu is a titled list of options. Inline menus are short questions
// rendered on one line by text prompters.
type Menu struct {
	Title   string
	Options []Option
	Inline  bool
}

// Prompter collects answers from the user.
// Implementations return io.EOF or a StopProcessingError when the user leaves,
// and ctx.Err() as soon as ctx is cancelled, even while waiting for input.
type Prompter interface {
	// Choose returns the key of the chosen option, or whatever the user typed.
	Choose(ctx context.Context, menu Menu) (string, error)
	// Ask returns a free-text answer to prompt.
	Ask(ctx context.Context, prompt string) (string, error)
}

// MainMenu lists the menu actions in their fixed numbering.
var MainMenu = Menu{
	Title: "Movie Player Menu",
	Options: []Option{
		{Key: "1", Label: "List Directors"},
		{Key: "2", Label: "Add Director"},
		{Key: "3", Label: "Update Director"},
		{Key: "4", Label: "Delete Director"},
		{Key: "5", Label: "List Movies"},
		{Key: "6", Label: "Add Movie"},
		{Key: "7", Label: "Update Movie"},
		{Key: "8", Label: "Delete Movie"},
		{Key: "9", Label: "Play Movie"},
		{Key: "10", Label: "Fetch Data from IMDb"},
		{Key: "0", Label: "Exit"},
	},
}

// FetchMenu asks which kind of lookup to run.
var FetchMenu = Menu{
	Title: "Fetch by",
	Options: []Option{
		{Key: "1", Label: "Director"},
		{Key: "2", Label: "Movie"},
	},
	Inline: true,
}

const invalidChoice = "Invalid choice. Please try again."

// errExit ends the menu loop after the exit message was printed.
var errExit = stdErrors.New("exit")

// RunMenu shows MainMenu until the user exits. Failed writes are logged and
// the loop continues; only prompter failures end it with an error.
// Cancelling ctx exits like EOF does; an action whose answers were still
// being collected is not run.
func RunMenu(ctx context.Context, s *Session, p Prompter) error {
	for {
		choice, err := choose(ctx, p, MainMenu)
		if err == nil {
			err = s.dispatch(ctx, p, choice)
		}
		if err == nil {
			err = ctx.Err()
		}

		switch {
		case err == nil:
		case stdErrors.Is(err, errExit):
			return nil
		case isExitSignal(err):
			if ctx.Err() != nil {
				slog.Debug("Menu interrupted", "error", ctx.Err())
			}
			s.println("Exiting Movie Player.")
			return nil
		case isPromptError(err):
			return err
		default:
			slog.Error("Operation failed", "choice", choice, "error", err)
		}
	}
}

// isExitSignal reports whether err means the user left: end of input,
// a stop from the prompter, or an interrupt.
func isExitSignal(err error) bool {
	return stdErrors.Is(err, io.EOF) ||
		errors.IsStopProcessingError(err) ||
		stdErrors.Is(err, context.Canceled) ||
		stdErrors.Is(err, context.DeadlineExceeded)
}

// promptError marks failures of the Prompter itself.
type promptError struct{ err error }

func (e *promptError) Error() string { return e.err.Error() }
func (e *promptError) Unwrap() error { return e.err }

func isPromptError(err error) bool {
	var pErr *promptError
	return stdErrors.As(err, &pErr)
}

// wrapPromptError leaves exit signals untouched and marks anything else fatal.
func wrapPromptError(err error) error {
	if isExitSignal(err) {
		return err
	}
	return &promptError{err: err}
}

// choose returns the chosen key, or ctx.Err() if ctx ended while the user answered.
func choose(ctx context.Context, p Prompter, menu Menu) (string, error) {
	choice, err := p.Choose(ctx, menu)
	if err != nil {
		return "", wrapPromptError(err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return choice, nil
}

// ask collects answers for prompts in order, stopping at the first failure.
// Answers are discarded if ctx ended meanwhile.
func ask(ctx context.Context, p Prompter, prompts ...string) ([]string, error) {
	answers := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		answer, err := p.Ask(ctx, prompt)
		if err != nil {
			return nil, wrapPromptError(err)
		}
		answers = append(answers, answer)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return answers, nil
}

func (s *Session) dispatch(ctx context.Context, p Prompter, choice string) error {
	switch choice {
	case "1":
		return s.ListDirectors()
	case "2":
		a, err := ask(ctx, p, "Enter director name: ")
		if err != nil {
			return err
		}
		return s.AddDirector(a[0])
	case "3":
		a, err := ask(ctx, p, "Enter current director name: ", "Enter new director name: ")
		if err != nil {
			return err
		}
		return s.RenameDirector(a[0], a[1])
	case "4":
		a, err := ask(ctx, p, "Enter director name to delete: ")
		if err != nil {
			return err
		}
		return s.DeleteDirector(a[0])
	case "5":
		a, err := ask(ctx, p, "Enter director name to list movies: ")
		if err != nil {
			return err
		}
		return s.ListMovies(a[0])
	case "6":
		a, err := ask(ctx, p, "Enter director name: ", "Enter movie title: ", "Enter movie runtime (e.g., '120 minutes'): ")
		if err != nil {
			return err
		}
		return s.AddMovie(a[0], a[1], a[2])
	case "7":
		a, err := ask(ctx, p, "Enter director name: ", "Enter current movie title: ", "Enter new movie title: ", "Enter new runtime (e.g., '120 minutes'): ")
		if err != nil {
			return err
		}
		return s.UpdateMovie(a[0], a[1], a[2], a[3])
	case "8":
		a, err := ask(ctx, p, "Enter director name: ", "Enter movie title to delete: ")
		if err != nil {
			return err
		}
		return s.DeleteMovie(a[0], a[1])
	case "9":
		a, err := ask(ctx, p, "Enter director name: ", "Enter movie title to play: ")
		if err != nil {
			return err
		}
		return s.Play(a[0], a[1])
	case "10":
		return s.fetchMenu(ctx, p)
	case "0":
		s.println("Exiting Movie Player.")
		return errExit
	default:
		s.println(invalidChoice)
		slog.Warn("User entered an invalid menu choice.", "choice", choice)
		return nil
	}
}

func (s *Session) fetchMenu(ctx context.Context, p Prompter) error {
	fetchType, err := choose(ctx, p, FetchMenu)
	if err != nil {
		return err
	}

	switch fetchType {
	case "1":
		a, err := ask(ctx, p, "Enter director name: ")
		if err != nil {
			return err
		}
		return s.Fetch(ctx, enrichment.Query{Director: a[0]}, true)
	case "2":
		a, err := ask(ctx, p, "Enter movie title: ")
		if err != nil {
			return err
		}
		return s.Fetch(ctx, enrichment.Query{Movie: a[0]}, true)
	default:
		s.println(invalidChoice)
		slog.Warn("User entered an invalid fetch type.", "choice", fetchType)
		return nil
	}
}
