package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/FELTRINCyril/cinebase/internal/model"
)

// ListMovies fetches movies matching the filter
func (c *Client) ListMovies(ctx context.Context, filter model.MovieFilter) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.getJSON(ctx, "list_movies", "/api/movies", filter.Values(), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovie fetches a single movie by id
func (c *Client) GetMovie(ctx context.Context, id string) (model.Movie, error) {
	var movie model.Movie
	if err := c.getJSON(ctx, "get_movie", "/api/movies/"+url.PathEscape(id), nil, &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

// CreateMovie creates a new movie record and returns it with its assigned id
func (c *Client) CreateMovie(ctx context.Context, in model.MovieInput) (model.Movie, error) {
	// The backend rejects null link lists
	if in.Acteurs == nil {
		in.Acteurs = []string{}
	}

	var movie model.Movie
	if err := c.sendJSON(ctx, "create_movie", http.MethodPost, "/api/movies", in, &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

// UpdateMovie rewrites an existing movie record and returns the stored state
func (c *Client) UpdateMovie(ctx context.Context, id string, in model.MovieInput) (model.Movie, error) {
	if in.Acteurs == nil {
		in.Acteurs = []string{}
	}

	var movie model.Movie
	if err := c.sendJSON(ctx, "update_movie", http.MethodPut, "/api/movies/"+url.PathEscape(id), in, &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

// DeleteMovie removes a movie record
func (c *Client) DeleteMovie(ctx context.Context, id string) error {
	_, err := c.do(ctx, "delete_movie", http.MethodDelete, "/api/movies/"+url.PathEscape(id), nil, nil, "")
	return err
}

// UploadMoviePhoto attaches a cover photo to a movie and returns the served
// photo path
func (c *Client) UploadMoviePhoto(ctx context.Context, id, filename string, photo io.Reader) (string, error) {
	return c.uploadPhoto(ctx, "upload_movie_photo", "/api/movies/"+url.PathEscape(id)+"/photo", filename, photo)
}
