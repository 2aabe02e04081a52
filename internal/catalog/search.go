package catalog

import (
	"context"
	"strings"

	"github.com/FELTRINCyril/cinebase/internal/model"
)

// SearchState is what the global search section renders
type SearchState struct {
	Query   string
	Phase   model.ListPhase
	Results model.SearchResults
}

// SetSearchQuery stores the query and restarts the debounce timer. An empty
// query resets the results right away without touching the backend.
func (s *Service) SetSearchQuery(query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	s.search.Query = query
	if s.searchFetch.timer != nil {
		s.searchFetch.timer.Stop()
	}
	if query == "" {
		// Invalidate any in-flight search so late results stay dropped
		s.searchFetch.supersede()
		s.search.Results = model.SearchResults{}
		s.search.Phase = model.ListPhaseIdle
		state := s.search
		s.mu.Unlock()
		s.notifySearch(state)
		return
	}
	s.searchFetch.schedule(s.debounce, s.RunSearch)
	s.mu.Unlock()
}

// RunSearch issues the global search with the current query right away
func (s *Service) RunSearch() {
	s.mu.Lock()
	query := s.search.Query
	if query == "" {
		s.mu.Unlock()
		return
	}
	generation, ctx := s.searchFetch.begin()
	s.search.Phase = model.ListPhaseLoading
	state := s.search
	s.mu.Unlock()

	s.notifySearch(state)
	go s.fetchSearch(ctx, generation, query)
}

func (s *Service) fetchSearch(ctx context.Context, generation uint64, query string) {
	results, err := s.backend.Search(ctx, query)

	s.mu.Lock()
	if generation != s.searchFetch.generation {
		s.mu.Unlock()
		s.log.Debug("dropping superseded search", "generation", generation)
		return
	}
	if err != nil {
		s.log.Error("search failed", "query", query, "error", err)
		s.search.Results = model.SearchResults{}
		s.search.Phase = model.ListPhaseEmpty
	} else {
		s.search.Results = results
		s.search.Phase = listPhase(results.Total())
	}
	state := s.search
	s.mu.Unlock()

	s.notifySearch(state)
}
