package tmdb

// Person is a single /search/person result.
type Person struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

// Credit is one entry of a person's movie credits.
type Credit struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Job         string `json:"job,omitempty"`
	Department  string `json:"department,omitempty"`
	Character   string `json:"character,omitempty"`
}

// MovieCredits is the /person/{id}/movie_credits payload.
type MovieCredits struct {
	ID   int      `json:"id"`
	Cast []Credit `json:"cast"`
	Crew []Credit `json:"crew"`
}

// DirectedTitles returns the titles of crew credits with job Director,
// in API order and without duplicates.
func (m *MovieCredits) DirectedTitles() []string {
	if m == nil {
		return nil
	}

	seen := make(map[string]struct{})
	titles := make([]string, 0, len(m.Crew))
	for _, credit := range m.Crew {
		if credit.Job != "Director" || credit.Title == "" {
			continue
		}
		if _, ok := seen[credit.Title]; ok {
			continue
		}
		seen[credit.Title] = struct{}{}
		titles = append(titles, credit.Title)
	}
	return titles
}
