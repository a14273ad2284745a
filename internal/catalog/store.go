package catalog

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/2002hackerr/movie-player/internal/errors"
	"github.com/2002hackerr/movie-player/internal/fileutil"
	"gopkg.in/yaml.v3"
)

// Store loads and saves the whole catalog. There is no incremental persistence:
// Save always receives every director.
type Store interface {
	// Load returns the stored directors. A missing source yields no directors and no error.
	Load() ([]Director, error)

	// Save replaces the stored catalog with directors
	Save(directors []Director) error
}

// document is the canonical on-disk shape: {"directors": [...]}
type document struct {
	Directors []Director `json:"directors" yaml:"directors"`
}

// The entry types use pointers so missing keys can be told apart from empty values.
type directorEntry struct {
	Name   *string       `json:"name" yaml:"name"`
	Movies *[]movieEntry `json:"movies" yaml:"movies"`
}

type movieEntry struct {
	Title   *string `json:"title" yaml:"title"`
	Runtime *string `json:"runtime" yaml:"runtime"`
}

type entryDocument struct {
	Directors []directorEntry `json:"directors" yaml:"directors"`
}

type codec struct {
	name      string
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var jsonCodec = codec{
	name: "json",
	marshal: func(v any) ([]byte, error) {
		data, err := json.MarshalIndent(v, "", "    ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	},
	unmarshal: json.Unmarshal,
}

var yamlCodec = codec{
	name:      "yaml",
	marshal:   yaml.Marshal,
	unmarshal: yaml.Unmarshal,
}

// codecFor picks the codec from the file extension; anything that is not YAML is JSON.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec
	default:
		return jsonCodec
	}
}

// FileStore keeps the catalog in a single JSON or YAML file.
type FileStore struct {
	path  string
	codec codec
}

// NewFileStore creates a FileStore for path. Files ending in .yaml or .yml are
// stored as YAML, everything else as JSON.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, codec: codecFor(path)}
}

// Path returns the storage file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the storage file.
// Content that does not decode, or decodes to the wrong shape, is reported as an
// *errors.FormatError.
func (s *FileStore) Load() ([]Director, error) {
	data, err := os.ReadFile(s.path)
	if stdErrors.Is(err, fs.ErrNotExist) {
		slog.Info("No catalog file found, starting with an empty catalog", "path", s.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", s.path, err)
	}

	return s.decode(data)
}

func (s *FileStore) decode(data []byte) ([]Director, error) {
	var raw any
	if err := s.codec.unmarshal(data, &raw); err != nil {
		return nil, errors.NewFormatError(s.path, fmt.Sprintf("failed to parse %s", s.codec.name), err)
	}

	top, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.NewFormatError(s.path, "top level must be a mapping with a directors list", nil)
	}
	entries, ok := top["directors"].([]any)
	if !ok {
		return nil, errors.NewFormatError(s.path, "top level must be a mapping with a directors list", nil)
	}

	var doc entryDocument
	if err := s.codec.unmarshal(data, &doc); err != nil {
		return nil, s.entryError(entries, err)
	}

	directors := make([]Director, 0, len(doc.Directors))
	for i, entry := range doc.Directors {
		if entry.Name == nil {
			return nil, errors.NewFormatError(s.path, fmt.Sprintf("director #%d has no name", i+1), nil)
		}
		if entry.Movies == nil {
			return nil, errors.NewFormatError(s.path, fmt.Sprintf("director %q has no movies list", *entry.Name), nil)
		}

		director := NewDirector(*entry.Name)
		for j, m := range *entry.Movies {
			if m.Title == nil || m.Runtime == nil {
				return nil, errors.NewFormatError(s.path,
					fmt.Sprintf("movie #%d of director %q needs a title and a runtime", j+1, *entry.Name), nil)
			}
			director.AddMovie(NewMovie(*m.Title, *m.Runtime))
		}
		directors = append(directors, director)
	}

	return directors, nil
}

// entryError names the first director entry, and within it the first movie,
// that fails to decode on its own. docErr is reported when none does.
func (s *FileStore) entryError(entries []any, docErr error) error {
	for i, raw := range entries {
		var entry directorEntry
		err := s.redecode(raw, &entry)
		if err == nil {
			continue
		}
		if j, movieErr := s.movieError(raw); movieErr != nil {
			return errors.NewFormatError(s.path, fmt.Sprintf("movie #%d of director #%d is invalid", j, i+1), movieErr)
		}
		return errors.NewFormatError(s.path, fmt.Sprintf("director #%d is invalid", i+1), err)
	}
	return errors.NewFormatError(s.path, "invalid director entry", docErr)
}

// movieError returns the 1-based index and decode error of the first bad movie in a director entry.
func (s *FileStore) movieError(rawDirector any) (int, error) {
	fields, ok := rawDirector.(map[string]any)
	if !ok {
		return 0, nil
	}
	movies, ok := fields["movies"].([]any)
	if !ok {
		return 0, nil
	}
	for j, raw := range movies {
		var movie movieEntry
		if err := s.redecode(raw, &movie); err != nil {
			return j + 1, err
		}
	}
	return 0, nil
}

// redecode round-trips a generically decoded value through the codec into target.
func (s *FileStore) redecode(raw any, target any) error {
	encoded, err := s.codec.marshal(raw)
	if err != nil {
		return err
	}
	return s.codec.unmarshal(encoded, target)
}

// Save writes every director to the storage file, replacing its content.
func (s *FileStore) Save(directors []Director) error {
	doc := document{Directors: make([]Director, len(directors))}
	for i, d := range directors {
		doc.Directors[i] = d.clone()
	}

	data, err := s.codec.marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := fileutil.WriteFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", s.path, err)
	}

	slog.Debug("Catalog saved", "path", s.path, "directors", len(directors))
	return nil
}
