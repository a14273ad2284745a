package omdb

import "strings"

// Response is the subset of the OMDb payload the lookup uses.
type Response struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Runtime    string `json:"Runtime"`
	Director   string `json:"Director"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Type       string `json:"Type"`
	Response   string `json:"Response"` // "True" or "False"
	Error      string `json:"Error"`    // Present if Response is "False"
}

// Directors splits the comma separated Director field. OMDb uses "N/A" for none.
func (r *Response) Directors() []string {
	if r == nil || r.Director == "" || r.Director == "N/A" {
		return nil
	}

	var names []string
	for name := range strings.SplitSeq(r.Director, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// IMDbURL returns the title page URL, or "" when OMDb sent no ID.
func (r *Response) IMDbURL() string {
	if r == nil || r.ImdbID == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + r.ImdbID + "/"
}
