package tmdb

import (
	"context"
	"fmt"
	"net/url"
)

// SearchPerson searches TMDB for people matching name, in API relevance order.
func (c *Client) SearchPerson(ctx context.Context, name string) ([]Person, error) {
	params := url.Values{}
	params.Set("query", name)
	params.Set("include_adult", "false")

	var response struct {
		Results []Person `json:"results"`
	}
	if err := c.getJSON(ctx, c.endpoint("/search/person", params), &response); err != nil {
		return nil, err
	}

	return response.Results, nil
}

// GetMovieCredits fetches the cast and crew movie credits of a person.
func (c *Client) GetMovieCredits(ctx context.Context, personID int) (*MovieCredits, error) {
	var credits MovieCredits
	if err := c.getJSON(ctx, c.endpoint(fmt.Sprintf("/person/%d/movie_credits", personID), nil), &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}
