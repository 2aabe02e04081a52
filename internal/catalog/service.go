package catalog

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/FELTRINCyril/cinebase/internal/api"
	"github.com/FELTRINCyril/cinebase/internal/model"
)

// FilterDebounce is how long filter and search edits settle before a
// request is issued
const FilterDebounce = 300 * time.Millisecond

// PhotoUpload carries a pending photo file through the save protocol
type PhotoUpload struct {
	Filename string
	Data     io.Reader
}

// fetchControl supersedes in-flight fetches: a new fetch bumps the
// generation and cancels the previous request so a slow stale response
// can never overwrite a newer one
type fetchControl struct {
	timer      *time.Timer
	generation uint64
	cancel     context.CancelFunc
}

// begin supersedes the pending fetch and hands out the next generation.
// A scheduled debounce fire becomes redundant because it would re-read the
// same current filter, so the timer is stopped too.
func (fc *fetchControl) begin() (uint64, context.Context) {
	if fc.timer != nil {
		fc.timer.Stop()
	}
	if fc.cancel != nil {
		fc.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	fc.cancel = cancel
	fc.generation++
	return fc.generation, ctx
}

// supersede invalidates the pending fetch without starting a new one
func (fc *fetchControl) supersede() {
	if fc.cancel != nil {
		fc.cancel()
		fc.cancel = nil
	}
	fc.generation++
}

// schedule restarts the trailing-edge debounce timer
func (fc *fetchControl) schedule(delay time.Duration, fire func()) {
	if fc.timer != nil {
		fc.timer.Stop()
	}
	fc.timer = time.AfterFunc(delay, fire)
}

// Service coordinates catalog state between the backend and the UI
type Service struct {
	backend  api.Catalog
	log      *slog.Logger
	validate *validator.Validate

	mu sync.RWMutex

	actors ActorList
	movies MovieList
	home   Home
	search SearchState

	actorFetch  fetchControl
	movieFetch  fetchControl
	searchFetch fetchControl

	genres        []string
	nationalities []string

	debounce time.Duration

	onActorsUpdate func(ActorList)
	onMoviesUpdate func(MovieList)
	onHomeUpdate   func(Home)
	onSearchUpdate func(SearchState)
}

// NewService creates the catalog service on top of a backend client
func NewService(backend api.Catalog, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		backend:  backend,
		log:      log,
		validate: validator.New(),
		actors:   ActorList{Phase: model.ListPhaseIdle},
		movies:   MovieList{Phase: model.ListPhaseIdle},
		home:     Home{Phase: model.ListPhaseIdle},
		search:   SearchState{Phase: model.ListPhaseIdle},
		debounce: FilterDebounce,
	}
}

// SetActorsCallback sets the callback invoked when the actors list changes
func (s *Service) SetActorsCallback(callback func(ActorList)) {
	s.onActorsUpdate = callback
}

// SetMoviesCallback sets the callback invoked when the movies list changes
func (s *Service) SetMoviesCallback(callback func(MovieList)) {
	s.onMoviesUpdate = callback
}

// SetHomeCallback sets the callback invoked when the home page state changes
func (s *Service) SetHomeCallback(callback func(Home)) {
	s.onHomeUpdate = callback
}

// SetSearchCallback sets the callback invoked when search results change
func (s *Service) SetSearchCallback(callback func(SearchState)) {
	s.onSearchUpdate = callback
}

// GetActorList returns the current actors list state
func (s *Service) GetActorList() ActorList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actors
}

// GetMovieList returns the current movies list state
func (s *Service) GetMovieList() MovieList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies
}

// GetHome returns the current home page state
func (s *Service) GetHome() Home {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.home
}

// GetSearchState returns the current global search state
func (s *Service) GetSearchState() SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

func (s *Service) notifyActors(state ActorList) {
	if s.onActorsUpdate != nil {
		s.onActorsUpdate(state)
	}
}

func (s *Service) notifyMovies(state MovieList) {
	if s.onMoviesUpdate != nil {
		s.onMoviesUpdate(state)
	}
}

func (s *Service) notifyHome(state Home) {
	if s.onHomeUpdate != nil {
		s.onHomeUpdate(state)
	}
}

func (s *Service) notifySearch(state SearchState) {
	if s.onSearchUpdate != nil {
		s.onSearchUpdate(state)
	}
}

// listPhase maps a settled fetch result onto the display phase
func listPhase(count int) model.ListPhase {
	if count == 0 {
		return model.ListPhaseEmpty
	}
	return model.ListPhaseDisplayed
}
