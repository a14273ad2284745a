package shell

import (
	"bytes"
	"context"
	stdErrors "errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/2002hackerr/movie-player/internal/enrichment"
	"github.com/2002hackerr/movie-player/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTranscript(t *testing.T, f *sessionFixture, input string) string {
	t.Helper()

	prompter := NewLinePrompter(strings.NewReader(input), f.out)
	require.NoError(t, RunMenu(context.Background(), f.session, prompter))
	return f.take()
}

func TestRunMenu_Transcript(t *testing.T) {
	f := newSessionFixture(t)

	input := strings.Join([]string{
		"2", "Christopher Nolan",
		"6", "Christopher Nolan", "Inception", "148 minutes",
		"5", "Christopher Nolan",
		"9", "Christopher Nolan", "Inception",
		"42",
		"0",
	}, "\n") + "\n"

	out := runTranscript(t, f, input)

	assert.Contains(t, out, "\nMovie Player Menu:\n1. List Directors\n")
	assert.Contains(t, out, "10. Fetch Data from IMDb\n0. Exit\nEnter your choice: ")
	assert.Contains(t, out, "Enter director name: Director 'Christopher Nolan' added.\n")
	assert.Contains(t, out, "Enter movie runtime (e.g., '120 minutes'): Movie 'Inception' added under director 'Christopher Nolan'.\n")
	assert.Contains(t, out, "Enter director name to list movies: 1. Inception (148 minutes)\n")
	assert.Contains(t, out, "Now Playing: 'Inception' directed by Christopher Nolan.\n")
	assert.Contains(t, out, "Invalid choice. Please try again.\n")
	assert.True(t, strings.HasSuffix(out, "Exiting Movie Player.\n"))
	assert.Equal(t, 6, strings.Count(out, "Movie Player Menu:"))

	f.env.AssertFileContains("movies.json", `"name": "Christopher Nolan"`)
}

func TestRunMenu_EOFExits(t *testing.T) {
	f := newSessionFixture(t)

	out := runTranscript(t, f, "1\n")
	assert.Contains(t, out, "No directors found.\n")
	assert.True(t, strings.HasSuffix(out, "Exiting Movie Player.\n"))
}

func TestRunMenu_EOFMidAction(t *testing.T) {
	f := newSessionFixture(t)

	out := runTranscript(t, f, "3\nOld Name")
	assert.True(t, strings.HasSuffix(out, "Exiting Movie Player.\n"))
	assert.NotContains(t, out, "updated")
}

func TestRunMenu_Fetch(t *testing.T) {
	f := newSessionFixture(t)
	f.fetcher.results = []enrichment.Result{{Type: enrichment.TypeDirector, Name: "Hou Hsiao-hsien", Movies: []string{"A City of Sadness"}}}

	out := runTranscript(t, f, "10\n1\nHou Hsiao-hsien\n10\n2\nThree Times\n10\n3\n0\n")

	assert.Contains(t, out, "Fetch by (1) Director or (2) Movie: ")
	assert.Contains(t, out, "Results appended to '")
	assert.Contains(t, out, "\"A City of Sadness\"")
	assert.Equal(t, 1, strings.Count(out, "Invalid choice. Please try again."))
	assert.Equal(t, []enrichment.Query{{Director: "Hou Hsiao-hsien"}, {Movie: "Three Times"}}, f.fetcher.queries)

	lines := strings.Split(strings.TrimSpace(f.env.ReadFileString("results.json")), "\n")
	assert.Len(t, lines, 2)
}

func TestRunMenu_SaveErrorContinues(t *testing.T) {
	f := newSessionFixture(t)
	f.env.MkdirAll("movies.json")

	out := runTranscript(t, f, "2\nAgnès Varda\n0\n")
	assert.NotContains(t, out, "added")
	assert.True(t, strings.HasSuffix(out, "Exiting Movie Player.\n"))
}

type scriptedPrompter struct {
	chooseErr error
	askErr    error
	choices   []string
	answers   []string
	// cancel runs after the last answer is given
	cancel context.CancelFunc
}

func (p *scriptedPrompter) Choose(ctx context.Context, menu Menu) (string, error) {
	if p.chooseErr != nil {
		return "", p.chooseErr
	}
	if len(p.choices) == 0 {
		return "0", nil
	}
	choice := p.choices[0]
	p.choices = p.choices[1:]
	return choice, nil
}

func (p *scriptedPrompter) Ask(ctx context.Context, prompt string) (string, error) {
	if p.askErr != nil || len(p.answers) == 0 {
		return "", p.askErr
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	if len(p.answers) == 0 && p.cancel != nil {
		p.cancel()
	}
	return answer, nil
}

func TestRunMenu_StopProcessing(t *testing.T) {
	f := newSessionFixture(t)

	err := RunMenu(context.Background(), f.session, &scriptedPrompter{chooseErr: errors.NewStopProcessingError("user quit")})
	require.NoError(t, err)
	assert.Equal(t, "Exiting Movie Player.\n", f.take())
}

func TestRunMenu_PrompterFailure(t *testing.T) {
	f := newSessionFixture(t)
	broken := stdErrors.New("terminal gone")

	err := RunMenu(context.Background(), f.session, &scriptedPrompter{chooseErr: broken})
	assert.ErrorIs(t, err, broken)

	err = RunMenu(context.Background(), f.session, &scriptedPrompter{choices: []string{"2"}, askErr: broken})
	assert.ErrorIs(t, err, broken)
}

func TestRunMenu_ContextCancelled(t *testing.T) {
	f := newSessionFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunMenu(ctx, f.session, &scriptedPrompter{choices: []string{"1", "1"}})
	require.NoError(t, err)
	assert.Equal(t, "Exiting Movie Player.\n", f.take())
}

func TestRunMenu_CancelledDuringAnswersSkipsAction(t *testing.T) {
	f := newSessionFixture(t)
	require.NoError(t, f.session.AddDirector("Christopher Nolan"))
	f.take()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := &scriptedPrompter{choices: []string{"4"}, answers: []string{"Christopher Nolan"}, cancel: cancel}

	require.NoError(t, RunMenu(ctx, f.session, p))

	assert.Equal(t, "Exiting Movie Player.\n", f.take())
	assert.Equal(t, 1, f.session.Catalog.Len())
}

// promptWatcher signals once a prompt containing marker has been written.
type promptWatcher struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	marker   string
	once     sync.Once
	prompted chan struct{}
}

func (w *promptWatcher) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n, err := w.buf.Write(p)
	if strings.Contains(w.buf.String(), w.marker) {
		w.once.Do(func() { close(w.prompted) })
	}
	return n, err
}

func TestRunMenu_InterruptWhileWaitingForInput(t *testing.T) {
	f := newSessionFixture(t)
	require.NoError(t, f.session.AddDirector("Christopher Nolan"))
	f.take()

	in, typed := io.Pipe()
	defer func() { _ = typed.Close() }()
	watcher := &promptWatcher{marker: "Enter your choice: ", prompted: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- RunMenu(ctx, f.session, NewLinePrompter(in, watcher))
	}()

	select {
	case <-watcher.prompted:
	case <-time.After(5 * time.Second):
		t.Fatal("menu never prompted")
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("menu still waiting for input after interrupt")
	}

	// input typed after the interrupt must not reach the catalog
	_, err := typed.Write([]byte("4\nChristopher Nolan\n"))
	require.NoError(t, err)

	assert.Equal(t, "Exiting Movie Player.\n", f.take())
	assert.Equal(t, 1, f.session.Catalog.Len())
	f.env.AssertFileContains("movies.json", "Christopher Nolan")
}

func TestLinePrompter(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewLinePrompter(strings.NewReader("first\r\nlast"), out)

	answer, err := p.Choose(context.Background(), FetchMenu)
	require.NoError(t, err)
	assert.Equal(t, "first", answer)
	assert.Equal(t, "Fetch by (1) Director or (2) Movie: ", out.String())

	answer, err = p.Ask(context.Background(), "Again: ")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = p.Ask(context.Background(), "More: ")
	assert.Error(t, err)
}

func TestLinePrompter_CancelWhileBlocked(t *testing.T) {
	in, typed := io.Pipe()
	defer func() { _ = typed.Close() }()
	p := NewLinePrompter(in, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Ask(ctx, "Enter director name: ")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	go func() { _, _ = typed.Write([]byte("Agnès Varda\n")) }()
	answer, err := p.Ask(context.Background(), "Enter director name: ")
	require.NoError(t, err)
	assert.Equal(t, "Agnès Varda", answer)
}
