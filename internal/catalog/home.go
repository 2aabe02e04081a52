package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/FELTRINCyril/cinebase/internal/model"
)

// HomeRecentLimit caps each recent section on the home page
const HomeRecentLimit = 8

// Home is what the home page renders: the most recently added records of
// each kind
type Home struct {
	Phase        model.ListPhase
	RecentActors []model.Actor
	RecentMovies []model.Movie
}

// RefreshHome reloads both home sections in parallel. A failed branch keeps
// its previous content while the other still updates.
func (s *Service) RefreshHome() {
	s.mu.Lock()
	s.home.Phase = model.ListPhaseLoading
	state := s.home
	s.mu.Unlock()

	s.notifyHome(state)
	go s.fetchHome()
}

func (s *Service) fetchHome() {
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		actors   []model.Actor
		movies   []model.Movie
		actorErr error
		movieErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		actors, actorErr = s.backend.ListActors(ctx, model.ActorFilter{})
	}()
	go func() {
		defer wg.Done()
		movies, movieErr = s.backend.ListMovies(ctx, model.MovieFilter{})
	}()
	wg.Wait()

	s.mu.Lock()
	if actorErr != nil {
		s.log.Error("home actors fetch failed", "error", actorErr)
	} else {
		s.home.RecentActors = recentActors(actors, HomeRecentLimit)
	}
	if movieErr != nil {
		s.log.Error("home movies fetch failed", "error", movieErr)
	} else {
		s.home.RecentMovies = recentMovies(movies, HomeRecentLimit)
	}
	s.home.Phase = listPhase(len(s.home.RecentActors) + len(s.home.RecentMovies))
	state := s.home
	s.mu.Unlock()

	s.notifyHome(state)
}

// recentActors returns the newest records first, truncated to limit. The
// backend offers no sort parameter so ordering happens here.
func recentActors(actors []model.Actor, limit int) []model.Actor {
	sorted := make([]model.Actor, len(actors))
	copy(sorted, actors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// recentMovies returns the newest records first, truncated to limit
func recentMovies(movies []model.Movie, limit int) []model.Movie {
	sorted := make([]model.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
