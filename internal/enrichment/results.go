package enrichment

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/2002hackerr/movie-player/internal/fileutil"
)

// DefaultResultsFile is where fetched results are appended unless configured otherwise.
const DefaultResultsFile = "lookup_results.json"

// ResultLog appends results to a newline-delimited JSON file.
type ResultLog struct {
	path string
}

// NewResultLog creates a ResultLog writing to path.
func NewResultLog(path string) *ResultLog {
	if path == "" {
		path = DefaultResultsFile
	}
	return &ResultLog{path: path}
}

// Path returns the log file path.
func (l *ResultLog) Path() string {
	return l.path
}

// Append writes one compact JSON object per result.
func (l *ResultLog) Append(results []Result) error {
	lines := make([][]byte, 0, len(results))
	for _, result := range results {
		line, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		lines = append(lines, line)
	}

	if err := fileutil.AppendLines(l.path, lines); err != nil {
		return fmt.Errorf("failed to append results to %s: %w", l.path, err)
	}

	slog.Debug("Appended lookup results", "path", l.path, "count", len(results))
	return nil
}
