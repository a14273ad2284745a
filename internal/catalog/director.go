package catalog

// Director owns an ordered list of movies. Movies keep insertion order.
type Director struct {
	Name   string  `json:"name" yaml:"name"`
	Movies []Movie `json:"movies" yaml:"movies"`
}

// NewDirector creates a Director with an empty movie list
func NewDirector(name string) Director {
	return Director{Name: name, Movies: []Movie{}}
}

// AddMovie appends a movie to the director's list
func (d *Director) AddMovie(movie Movie) {
	d.Movies = append(d.Movies, movie)
}

// RemoveMovie removes every movie with the given title and returns how many were removed
func (d *Director) RemoveMovie(title string) int {
	kept := make([]Movie, 0, len(d.Movies))
	for _, movie := range d.Movies {
		if movie.Title != title {
			kept = append(kept, movie)
		}
	}
	removed := len(d.Movies) - len(kept)
	d.Movies = kept
	return removed
}

// FindMovie returns the first movie with the given title, or nil
func (d *Director) FindMovie(title string) *Movie {
	for i := range d.Movies {
		if d.Movies[i].Title == title {
			return &d.Movies[i]
		}
	}
	return nil
}

func (d Director) clone() Director {
	movies := make([]Movie, len(d.Movies))
	copy(movies, d.Movies)
	return Director{Name: d.Name, Movies: movies}
}

func cloneDirectors(directors []Director) []Director {
	out := make([]Director, len(directors))
	for i, d := range directors {
		out[i] = d.clone()
	}
	return out
}
