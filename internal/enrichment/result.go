package enrichment

import (
	"encoding/json"
)

// Result is a single lookup outcome. Field names follow the results log format.
type Result struct {
	Type     string   `json:"type,omitempty"`
	Name     string   `json:"name,omitempty"`
	Movies   []string `json:"movies,omitempty"`
	Title    string   `json:"title,omitempty"`
	Runtime  string   `json:"runtime,omitempty"`
	Rating   string   `json:"rating,omitempty"`
	Director string   `json:"director,omitempty"`
	IMDbURL  string   `json:"imdb_url,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Failed reports whether the lookup produced an error entry.
func (r Result) Failed() bool {
	return r.Error != ""
}

// MarshalJSON keeps an empty filmography as [] on successful director results.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	out := struct {
		plain
		Movies *[]string `json:"movies,omitempty"`
	}{plain: plain(r)}

	if r.Type == TypeDirector && r.Error == "" {
		movies := r.Movies
		if movies == nil {
			movies = []string{}
		}
		out.Movies = &movies
	}
	return json.Marshal(out)
}

// Pretty renders the result as 4-space indented JSON for display.
func (r Result) Pretty() (string, error) {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
