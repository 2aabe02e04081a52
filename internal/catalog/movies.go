package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/FELTRINCyril/cinebase/internal/model"
	"github.com/FELTRINCyril/cinebase/pkg/prometheus"
)

// MovieList is what the movies page renders
type MovieList struct {
	Phase  model.ListPhase
	Items  []model.Movie
	Filter model.MovieFilter
}

// MovieSaveResult reports a two-phase movie save. PhotoErr is set when the
// record was stored but its cover upload failed; the record is kept.
type MovieSaveResult struct {
	Movie    model.Movie
	PhotoErr error
}

// SetMovieFilter stores the filter and restarts the debounce timer. Rapid
// edits collapse into a single fetch carrying the latest values.
func (s *Service) SetMovieFilter(filter model.MovieFilter) {
	s.mu.Lock()
	s.movies.Filter = filter
	s.movieFetch.schedule(s.debounce, s.RefreshMovies)
	s.mu.Unlock()
}

// RefreshMovies fetches the movies list with the current filter right away
func (s *Service) RefreshMovies() {
	s.mu.Lock()
	filter := s.movies.Filter
	generation, ctx := s.movieFetch.begin()
	s.movies.Phase = model.ListPhaseLoading
	state := s.movies
	s.mu.Unlock()

	s.notifyMovies(state)
	go s.fetchMovies(ctx, generation, filter)
}

// fetchMovies performs one movies list fetch and applies it unless a newer
// fetch has superseded it
func (s *Service) fetchMovies(ctx context.Context, generation uint64, filter model.MovieFilter) {
	prometheus.ActiveFetches.Inc()
	defer prometheus.ActiveFetches.Dec()
	prometheus.ListRefreshes.WithLabelValues("movies").Inc()

	movies, err := s.backend.ListMovies(ctx, filter)

	s.mu.Lock()
	if generation != s.movieFetch.generation {
		s.mu.Unlock()
		s.log.Debug("dropping superseded movies fetch", "generation", generation)
		return
	}
	if err != nil {
		s.log.Error("movies fetch failed", "error", err)
		s.movies.Items = nil
		s.movies.Phase = model.ListPhaseEmpty
	} else {
		s.movies.Items = movies
		s.movies.Phase = listPhase(len(movies))
	}
	state := s.movies
	s.mu.Unlock()

	s.notifyMovies(state)
}

// SaveMovie runs the two-phase save protocol: validate, store the record,
// then upload the cover when one is attached. A failed upload does not roll
// the record back; the result reports it separately.
func (s *Service) SaveMovie(ctx context.Context, in model.MovieInput, photo *PhotoUpload) (MovieSaveResult, error) {
	const op = "Service.SaveMovie"

	in.Nom = strings.TrimSpace(in.Nom)
	if err := s.validate.Struct(in); err != nil {
		return MovieSaveResult{}, fmt.Errorf("%s: %w", op, ErrNameRequired)
	}

	var (
		movie model.Movie
		err   error
	)
	if in.IsUpdate() {
		movie, err = s.backend.UpdateMovie(ctx, in.ID, in)
	} else {
		movie, err = s.backend.CreateMovie(ctx, in)
	}
	if err != nil {
		return MovieSaveResult{}, fmt.Errorf("%s: %w", op, err)
	}

	result := MovieSaveResult{Movie: movie}
	if photo != nil {
		photoURL, uploadErr := s.backend.UploadMoviePhoto(ctx, movie.ID, photo.Filename, photo.Data)
		if uploadErr != nil {
			s.log.Warn("movie saved but cover upload failed",
				"id", movie.ID,
				"error", uploadErr)
			result.PhotoErr = uploadErr
		} else {
			result.Movie.PhotoCouverture = photoURL
		}
	}

	s.RefreshMovies()
	return result, nil
}

// RemoveMovie deletes a movie record and refreshes the list. Confirmation
// is the caller's responsibility; nothing is deleted implicitly.
func (s *Service) RemoveMovie(ctx context.Context, id string) error {
	const op = "Service.RemoveMovie"

	if err := s.backend.DeleteMovie(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.RefreshMovies()
	return nil
}
