// Package catalog holds the directors/movies catalog, its persistence and
// the operations that mutate it.
package catalog

import "fmt"

// Movie is a title with a free-form runtime such as "148 minutes".
// The runtime is display text and is never parsed.
type Movie struct {
	Title   string `json:"title" yaml:"title"`
	Runtime string `json:"runtime" yaml:"runtime"`
}

// NewMovie creates a Movie
func NewMovie(title, runtime string) Movie {
	return Movie{Title: title, Runtime: runtime}
}

// String renders the movie as "title (runtime)"
func (m Movie) String() string {
	return fmt.Sprintf("%s (%s)", m.Title, m.Runtime)
}
