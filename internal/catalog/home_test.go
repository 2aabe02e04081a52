package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/FELTRINCyril/cinebase/internal/model"
)

func actorCreatedAt(id, nom string, at time.Time) model.Actor {
	return model.Actor{ID: id, Nom: nom, CreatedAt: model.APITime{Time: at}}
}

func movieCreatedAt(id, nom string, at time.Time) model.Movie {
	return model.Movie{ID: id, Nom: nom, CreatedAt: model.APITime{Time: at}}
}

func TestRecentActors_NewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	actors := []model.Actor{
		actorCreatedAt("a1", "Oldest", base),
		actorCreatedAt("a3", "Newest", base.Add(2*time.Hour)),
		actorCreatedAt("a2", "Middle", base.Add(time.Hour)),
	}

	sorted := recentActors(actors, 8)
	if len(sorted) != 3 {
		t.Fatalf("Expected 3 actors, got %d", len(sorted))
	}
	if sorted[0].Nom != "Newest" || sorted[1].Nom != "Middle" || sorted[2].Nom != "Oldest" {
		t.Errorf("Expected newest first ordering, got %s, %s, %s",
			sorted[0].Nom, sorted[1].Nom, sorted[2].Nom)
	}

	truncated := recentActors(actors, 2)
	if len(truncated) != 2 {
		t.Fatalf("Expected truncation to 2, got %d", len(truncated))
	}
	if truncated[0].Nom != "Newest" {
		t.Errorf("Expected Newest first after truncation, got %s", truncated[0].Nom)
	}
}

func TestRefreshHome_LoadsBothSections(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	fake := &fakeBackend{
		listActorsFunc: func(model.ActorFilter) ([]model.Actor, error) {
			return []model.Actor{actorCreatedAt("a1", "Marion Cotillard", base)}, nil
		},
		listMoviesFunc: func(model.MovieFilter) ([]model.Movie, error) {
			return []model.Movie{movieCreatedAt("m1", "La Môme", base)}, nil
		},
	}
	service := newTestService(fake)

	service.RefreshHome()

	if !waitFor(t, func() bool { return service.GetHome().Phase == model.ListPhaseDisplayed }) {
		t.Fatalf("Expected phase Displayed, got %s", service.GetHome().Phase)
	}

	home := service.GetHome()
	if len(home.RecentActors) != 1 || len(home.RecentMovies) != 1 {
		t.Errorf("Expected 1 actor and 1 movie, got %d and %d",
			len(home.RecentActors), len(home.RecentMovies))
	}
}

func TestRefreshHome_FailedBranchKeepsPreviousContent(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	fake := &fakeBackend{
		listActorsFunc: func(model.ActorFilter) ([]model.Actor, error) {
			return []model.Actor{actorCreatedAt("a1", "Marion Cotillard", base)}, nil
		},
		listMoviesFunc: func(model.MovieFilter) ([]model.Movie, error) {
			return []model.Movie{movieCreatedAt("m1", "La Môme", base)}, nil
		},
	}
	service := newTestService(fake)

	service.RefreshHome()
	if !waitFor(t, func() bool { return len(service.GetHome().RecentMovies) == 1 }) {
		t.Fatal("Expected the first load to land")
	}

	// Movies start failing; actors gain a record
	fake.mu.Lock()
	fake.listMoviesFunc = func(model.MovieFilter) ([]model.Movie, error) {
		return nil, errors.New("backend down")
	}
	fake.listActorsFunc = func(model.ActorFilter) ([]model.Actor, error) {
		return []model.Actor{
			actorCreatedAt("a1", "Marion Cotillard", base),
			actorCreatedAt("a2", "Jean Dujardin", base.Add(time.Hour)),
		}, nil
	}
	fake.mu.Unlock()

	service.RefreshHome()
	if !waitFor(t, func() bool { return len(service.GetHome().RecentActors) == 2 }) {
		t.Fatal("Expected the actors branch to update")
	}

	home := service.GetHome()
	if len(home.RecentMovies) != 1 || home.RecentMovies[0].Nom != "La Môme" {
		t.Errorf("Expected the failed movies branch to keep previous content, got %v", home.RecentMovies)
	}
	if home.RecentActors[0].Nom != "Jean Dujardin" {
		t.Errorf("Expected newest actor first, got %s", home.RecentActors[0].Nom)
	}
	if home.Phase != model.ListPhaseDisplayed {
		t.Errorf("Expected phase Displayed with partial content, got %s", home.Phase)
	}
}
