package errors

import (
	"errors"
	"fmt"
)

// Entity kinds used by NotFoundError and EmptyError.
const (
	KindDirector = "director"
	KindMovie    = "movie"
)

// NotFoundError is returned when a director or movie lookup by exact name fails.
type NotFoundError struct {
	Kind     string
	Name     string
	Director string // set for movies
}

func (e *NotFoundError) Error() string {
	if e.Kind == KindMovie {
		return fmt.Sprintf("Movie '%s' under director '%s' not found.", e.Name, e.Director)
	}
	return fmt.Sprintf("Director '%s' not found.", e.Name)
}

// NewDirectorNotFoundError creates a NotFoundError for a director name.
func NewDirectorNotFoundError(name string) *NotFoundError {
	return &NotFoundError{Kind: KindDirector, Name: name}
}

// NewMovieNotFoundError creates a NotFoundError for a movie title under a director.
func NewMovieNotFoundError(director, title string) *NotFoundError {
	return &NotFoundError{Kind: KindMovie, Name: title, Director: director}
}

// IsNotFoundError reports whether err is a NotFoundError (even when wrapped).
func IsNotFoundError(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}

// EmptyError is returned by listings that have nothing to list.
type EmptyError struct {
	Kind     string
	Director string // set when listing movies
}

func (e *EmptyError) Error() string {
	if e.Kind == KindMovie {
		return fmt.Sprintf("No movies found for director '%s'.", e.Director)
	}
	return "No directors found."
}

// NewNoDirectorsError creates an EmptyError for an empty catalog.
func NewNoDirectorsError() *EmptyError {
	return &EmptyError{Kind: KindDirector}
}

// NewNoMoviesError creates an EmptyError for a director without movies.
func NewNoMoviesError(director string) *EmptyError {
	return &EmptyError{Kind: KindMovie, Director: director}
}

// IsEmptyError reports whether err is an EmptyError (even when wrapped).
func IsEmptyError(err error) bool {
	var emptyErr *EmptyError
	return errors.As(err, &emptyErr)
}

// FormatError reports catalog content that could not be turned into directors and movies.
// It is non-fatal: callers log it and continue with an empty catalog.
type FormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("catalog %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError creates a FormatError for the given source path.
func NewFormatError(path, reason string, err error) *FormatError {
	return &FormatError{Path: path, Reason: reason, Err: err}
}

// IsFormatError reports whether err is a FormatError (even when wrapped).
func IsFormatError(err error) bool {
	var fmtErr *FormatError
	return errors.As(err, &fmtErr)
}
