package catalog

import "context"

// GenreOptions returns the backend's known genres for the filter dropdown,
// fetching once and caching. Failures degrade to no suggestions.
func (s *Service) GenreOptions(ctx context.Context) []string {
	s.mu.RLock()
	cached := s.genres
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}

	genres, err := s.backend.Genres(ctx)
	if err != nil {
		s.log.Warn("genres fetch failed", "error", err)
		return nil
	}

	s.mu.Lock()
	s.genres = genres
	s.mu.Unlock()
	return genres
}

// NationalityOptions returns the backend's known nationalities for the
// filter dropdown, fetching once and caching
func (s *Service) NationalityOptions(ctx context.Context) []string {
	s.mu.RLock()
	cached := s.nationalities
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}

	nationalities, err := s.backend.Nationalities(ctx)
	if err != nil {
		s.log.Warn("nationalities fetch failed", "error", err)
		return nil
	}

	s.mu.Lock()
	s.nationalities = nationalities
	s.mu.Unlock()
	return nationalities
}
