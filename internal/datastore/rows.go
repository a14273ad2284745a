package datastore

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/2002hackerr/movie-player/internal/catalog"
)

type directorRow struct {
	ID         int
	Name       string
	MovieCount int
}

type movieRow struct {
	ID         int
	DirectorID int
	Director   string
	Position   int
	Title      string
	Runtime    string
}

// buildRows flattens the catalog into table rows. IDs follow catalog order
// so repeated exports overwrite the same rows.
func buildRows(directors []catalog.Director) (directorRows, movieRows []map[string]any) {
	movieID := 0
	for i, director := range directors {
		directorID := i + 1
		directorRows = append(directorRows, toRecord(directorRow{
			ID:         directorID,
			Name:       director.Name,
			MovieCount: len(director.Movies),
		}))
		for j, movie := range director.Movies {
			movieID++
			movieRows = append(movieRows, toRecord(movieRow{
				ID:         movieID,
				DirectorID: directorID,
				Director:   director.Name,
				Position:   j + 1,
				Title:      movie.Title,
				Runtime:    movie.Runtime,
			}))
		}
	}
	return directorRows, movieRows
}

// toRecord converts a row struct into a record keyed by snake_case column names.
func toRecord[T any](row T) map[string]any {
	record := make(map[string]any)
	v := reflect.ValueOf(row)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return record
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return record
	}

	t := v.Type()
	for i := range v.NumField() {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		record[columnName(field.Name)] = v.Field(i).Interface()
	}
	return record
}

// columnName turns a Go field name into a column name: MovieCount -> movie_count, ID -> id.
func columnName(field string) string {
	runes := []rune(field)
	var builder strings.Builder
	builder.Grow(len(runes) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				builder.WriteRune('_')
			}
		}
		builder.WriteRune(unicode.ToLower(r))
	}
	return builder.String()
}
