package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// LinePrompter reads answers line by line, for plain terminals and pipes.
//
// Reads happen on a background goroutine so a cancelled context ends Ask
// immediately. A line typed after cancellation is read but never returned.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer

	start   sync.Once
	lines   chan string
	readErr error // set before lines is closed
}

// NewLinePrompter creates a LinePrompter reading from in and prompting on out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan string),
	}
}

// Choose prints the menu and returns the raw answer.
func (p *LinePrompter) Choose(ctx context.Context, menu Menu) (string, error) {
	if menu.Inline {
		parts := make([]string, len(menu.Options))
		for i, opt := range menu.Options {
			parts[i] = fmt.Sprintf("(%s) %s", opt.Key, opt.Label)
		}
		return p.Ask(ctx, fmt.Sprintf("%s %s: ", menu.Title, strings.Join(parts, " or ")))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s:\n", menu.Title)
	for _, opt := range menu.Options {
		fmt.Fprintf(&b, "%s. %s\n", opt.Key, opt.Label)
	}
	if _, err := io.WriteString(p.out, b.String()); err != nil {
		return "", err
	}
	return p.Ask(ctx, "Enter your choice: ")
}

// Ask prints prompt and returns the next line without its line ending.
// A final line without a newline is still returned; io.EOF follows on the next call.
func (p *LinePrompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}

	p.start.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", p.readErr
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}

func (p *LinePrompter) readLines() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		if line != "" {
			p.lines <- line
		}
		if err != nil {
			p.readErr = err
			return
		}
	}
}
