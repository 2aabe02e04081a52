package api

import (
	"context"
	"io"

	"github.com/FELTRINCyril/cinebase/internal/model"
)

// Catalog defines the backend operations the application depends on.
type Catalog interface {
	ListActors(ctx context.Context, filter model.ActorFilter) ([]model.Actor, error)
	GetActor(ctx context.Context, id string) (model.Actor, error)
	CreateActor(ctx context.Context, in model.ActorInput) (model.Actor, error)
	UpdateActor(ctx context.Context, id string, in model.ActorInput) (model.Actor, error)
	DeleteActor(ctx context.Context, id string) error
	UploadActorPhoto(ctx context.Context, id, filename string, photo io.Reader) (string, error)

	ListMovies(ctx context.Context, filter model.MovieFilter) ([]model.Movie, error)
	GetMovie(ctx context.Context, id string) (model.Movie, error)
	CreateMovie(ctx context.Context, in model.MovieInput) (model.Movie, error)
	UpdateMovie(ctx context.Context, id string, in model.MovieInput) (model.Movie, error)
	DeleteMovie(ctx context.Context, id string) error
	UploadMoviePhoto(ctx context.Context, id, filename string, photo io.Reader) (string, error)

	Search(ctx context.Context, q string) (model.SearchResults, error)
	Genres(ctx context.Context) ([]string, error)
	Nationalities(ctx context.Context) ([]string, error)

	// PhotoURL resolves a served photo path against the backend address
	PhotoURL(rel string) string

	// FetchImage downloads a served photo for display
	FetchImage(ctx context.Context, rel string) ([]byte, error)
}
