package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/FELTRINCyril/cinebase/internal/model"
	"github.com/FELTRINCyril/cinebase/pkg/prometheus"
)

// ActorList is what the actors page renders
type ActorList struct {
	Phase  model.ListPhase
	Items  []model.Actor
	Filter model.ActorFilter
}

// ActorSaveResult reports a two-phase actor save. PhotoErr is set when the
// record was stored but its photo upload failed; the record is kept.
type ActorSaveResult struct {
	Actor    model.Actor
	PhotoErr error
}

// SetActorFilter stores the filter and restarts the debounce timer. Rapid
// edits collapse into a single fetch carrying the latest values.
func (s *Service) SetActorFilter(filter model.ActorFilter) {
	s.mu.Lock()
	s.actors.Filter = filter
	s.actorFetch.schedule(s.debounce, s.RefreshActors)
	s.mu.Unlock()
}

// RefreshActors fetches the actors list with the current filter right away
func (s *Service) RefreshActors() {
	s.mu.Lock()
	filter := s.actors.Filter
	generation, ctx := s.actorFetch.begin()
	s.actors.Phase = model.ListPhaseLoading
	state := s.actors
	s.mu.Unlock()

	s.notifyActors(state)
	go s.fetchActors(ctx, generation, filter)
}

// fetchActors performs one actors list fetch and applies it unless a newer
// fetch has superseded it
func (s *Service) fetchActors(ctx context.Context, generation uint64, filter model.ActorFilter) {
	prometheus.ActiveFetches.Inc()
	defer prometheus.ActiveFetches.Dec()
	prometheus.ListRefreshes.WithLabelValues("actors").Inc()

	actors, err := s.backend.ListActors(ctx, filter)

	s.mu.Lock()
	if generation != s.actorFetch.generation {
		s.mu.Unlock()
		s.log.Debug("dropping superseded actors fetch", "generation", generation)
		return
	}
	if err != nil {
		s.log.Error("actors fetch failed", "error", err)
		s.actors.Items = nil
		s.actors.Phase = model.ListPhaseEmpty
	} else {
		s.actors.Items = actors
		s.actors.Phase = listPhase(len(actors))
	}
	state := s.actors
	s.mu.Unlock()

	s.notifyActors(state)
}

// SaveActor runs the two-phase save protocol: validate, store the record,
// then upload the photo when one is attached. A failed upload does not roll
// the record back; the result reports it separately.
func (s *Service) SaveActor(ctx context.Context, in model.ActorInput, photo *PhotoUpload) (ActorSaveResult, error) {
	const op = "Service.SaveActor"

	in.Nom = strings.TrimSpace(in.Nom)
	if err := s.validate.Struct(in); err != nil {
		return ActorSaveResult{}, fmt.Errorf("%s: %w", op, ErrNameRequired)
	}

	var (
		actor model.Actor
		err   error
	)
	if in.IsUpdate() {
		actor, err = s.backend.UpdateActor(ctx, in.ID, in)
	} else {
		actor, err = s.backend.CreateActor(ctx, in)
	}
	if err != nil {
		return ActorSaveResult{}, fmt.Errorf("%s: %w", op, err)
	}

	result := ActorSaveResult{Actor: actor}
	if photo != nil {
		photoURL, uploadErr := s.backend.UploadActorPhoto(ctx, actor.ID, photo.Filename, photo.Data)
		if uploadErr != nil {
			s.log.Warn("actor saved but photo upload failed",
				"id", actor.ID,
				"error", uploadErr)
			result.PhotoErr = uploadErr
		} else {
			result.Actor.PhotoProfil = photoURL
		}
	}

	s.RefreshActors()
	return result, nil
}

// RemoveActor deletes an actor record and refreshes the list. Confirmation
// is the caller's responsibility; nothing is deleted implicitly.
func (s *Service) RemoveActor(ctx context.Context, id string) error {
	const op = "Service.RemoveActor"

	if err := s.backend.DeleteActor(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.RefreshActors()
	return nil
}
