package api

import (
	"context"
	"net/url"

	"github.com/FELTRINCyril/cinebase/internal/model"
)

// Search runs the global search across actors and movies
func (c *Client) Search(ctx context.Context, q string) (model.SearchResults, error) {
	query := url.Values{}
	query.Set("q", q)

	var results model.SearchResults
	if err := c.getJSON(ctx, "search", "/api/search", query, &results); err != nil {
		return model.SearchResults{}, err
	}
	return results, nil
}

// Genres fetches the distinct movie genres known to the backend
func (c *Client) Genres(ctx context.Context) ([]string, error) {
	var out struct {
		Genres []string `json:"genres"`
	}
	if err := c.getJSON(ctx, "genres", "/api/genres", nil, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

// Nationalities fetches the distinct actor nationalities known to the backend
func (c *Client) Nationalities(ctx context.Context) ([]string, error) {
	var out struct {
		Nationalities []string `json:"nationalities"`
	}
	if err := c.getJSON(ctx, "nationalities", "/api/nationalities", nil, &out); err != nil {
		return nil, err
	}
	return out.Nationalities, nil
}
