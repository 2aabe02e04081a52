package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/FELTRINCyril/cinebase/internal/model"
)

func TestSaveActor_EmptyNameMakesNoRequest(t *testing.T) {
	fake := &fakeBackend{}
	service := newTestService(fake)

	_, err := service.SaveActor(context.Background(), model.ActorInput{Nom: ""}, nil)
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("SaveActor() error = %v, expected ErrNameRequired", err)
	}

	time.Sleep(50 * time.Millisecond)

	fake.mu.Lock()
	creates, updates, uploads := fake.createCalls, fake.updateCalls, fake.uploadCalls
	fake.mu.Unlock()
	if creates != 0 || updates != 0 || uploads != 0 {
		t.Errorf("Expected no backend calls, got creates=%d updates=%d uploads=%d",
			creates, updates, uploads)
	}
	if calls := fake.actorFilterCalls(); len(calls) != 0 {
		t.Errorf("Expected no list refresh, got %d fetches", len(calls))
	}
}

func TestSaveActor_CreateWithoutPhoto(t *testing.T) {
	age := 48
	fake := &fakeBackend{
		createActorFunc: func(in model.ActorInput) (model.Actor, error) {
			return model.Actor{ID: "a1", Nom: in.Nom, Age: in.Age}, nil
		},
	}
	service := newTestService(fake)

	result, err := service.SaveActor(context.Background(), model.ActorInput{
		Nom: "Marion Cotillard",
		Age: &age,
	}, nil)
	if err != nil {
		t.Fatalf("SaveActor() error = %v", err)
	}

	if result.Actor.ID != "a1" {
		t.Errorf("Actor.ID = %s, expected a1", result.Actor.ID)
	}
	if result.PhotoErr != nil {
		t.Errorf("PhotoErr = %v, expected nil", result.PhotoErr)
	}

	// The list refreshes after a successful save
	if !waitFor(t, func() bool { return len(fake.actorFilterCalls()) >= 1 }) {
		t.Error("Expected a list refresh after save")
	}
}

func TestSaveActor_PhotoFailureKeepsRecord(t *testing.T) {
	uploadErr := errors.New("connection reset")
	fake := &fakeBackend{
		createActorFunc: func(in model.ActorInput) (model.Actor, error) {
			return model.Actor{ID: "a1", Nom: in.Nom}, nil
		},
		uploadActorPhotoFunc: func(id, filename string) (string, error) {
			return "", uploadErr
		},
	}
	service := newTestService(fake)

	photo := &PhotoUpload{Filename: "portrait.png", Data: strings.NewReader("png bytes")}
	result, err := service.SaveActor(context.Background(), model.ActorInput{Nom: "Marion Cotillard"}, photo)
	if err != nil {
		t.Fatalf("SaveActor() error = %v, expected the record to be kept", err)
	}

	if result.Actor.ID != "a1" {
		t.Errorf("Actor.ID = %s, expected the created record", result.Actor.ID)
	}
	if !errors.Is(result.PhotoErr, uploadErr) {
		t.Errorf("PhotoErr = %v, expected the upload failure", result.PhotoErr)
	}

	// The record stays; no compensating delete
	fake.mu.Lock()
	deletes := len(fake.actorDeletes)
	fake.mu.Unlock()
	if deletes != 0 {
		t.Errorf("Expected no delete after photo failure, got %d", deletes)
	}
}

func TestSaveActor_PhotoSuccessSetsPath(t *testing.T) {
	fake := &fakeBackend{
		createActorFunc: func(in model.ActorInput) (model.Actor, error) {
			return model.Actor{ID: "a1", Nom: in.Nom}, nil
		},
		uploadActorPhotoFunc: func(id, filename string) (string, error) {
			return "/uploads/actor_a1_cafe0123.png", nil
		},
	}
	service := newTestService(fake)

	photo := &PhotoUpload{Filename: "portrait.png", Data: strings.NewReader("png bytes")}
	result, err := service.SaveActor(context.Background(), model.ActorInput{Nom: "Marion Cotillard"}, photo)
	if err != nil {
		t.Fatalf("SaveActor() error = %v", err)
	}

	if result.Actor.PhotoProfil != "/uploads/actor_a1_cafe0123.png" {
		t.Errorf("PhotoProfil = %q, expected served path", result.Actor.PhotoProfil)
	}
}

func TestSaveActor_UpdateUsesExistingID(t *testing.T) {
	fake := &fakeBackend{}
	service := newTestService(fake)

	_, err := service.SaveActor(context.Background(), model.ActorInput{ID: "a1", Nom: "Marion Cotillard"}, nil)
	if err != nil {
		t.Fatalf("SaveActor() error = %v", err)
	}

	fake.mu.Lock()
	creates, updates := fake.createCalls, fake.updateCalls
	fake.mu.Unlock()
	if creates != 0 {
		t.Errorf("Expected no create for input with id, got %d", creates)
	}
	if updates != 1 {
		t.Errorf("Expected 1 update, got %d", updates)
	}
}

func TestSaveActor_CreateFailureSkipsUpload(t *testing.T) {
	fake := &fakeBackend{
		createActorFunc: func(model.ActorInput) (model.Actor, error) {
			return model.Actor{}, errors.New("boom")
		},
	}
	service := newTestService(fake)

	photo := &PhotoUpload{Filename: "portrait.png", Data: strings.NewReader("png bytes")}
	_, err := service.SaveActor(context.Background(), model.ActorInput{Nom: "Marion Cotillard"}, photo)
	if err == nil {
		t.Fatal("SaveActor() error = nil, expected create failure")
	}

	fake.mu.Lock()
	uploads := fake.uploadCalls
	fake.mu.Unlock()
	if uploads != 0 {
		t.Errorf("Expected no upload after create failure, got %d", uploads)
	}
}

func TestSaveMovie_EmptyNameMakesNoRequest(t *testing.T) {
	fake := &fakeBackend{}
	service := newTestService(fake)

	_, err := service.SaveMovie(context.Background(), model.MovieInput{Nom: "   "}, nil)
	if err == nil {
		t.Fatal("SaveMovie() error = nil, expected validation failure")
	}

	fake.mu.Lock()
	creates := fake.createCalls
	fake.mu.Unlock()
	if creates != 0 {
		t.Errorf("Expected no backend calls, got %d creates", creates)
	}
}

func TestSaveMovie_PhotoFailureKeepsRecord(t *testing.T) {
	fake := &fakeBackend{
		createMovieFunc: func(in model.MovieInput) (model.Movie, error) {
			return model.Movie{ID: "m1", Nom: in.Nom}, nil
		},
		uploadMoviePhotoFunc: func(id, filename string) (string, error) {
			return "", errors.New("disk full")
		},
	}
	service := newTestService(fake)

	photo := &PhotoUpload{Filename: "affiche.jpg", Data: strings.NewReader("jpg bytes")}
	result, err := service.SaveMovie(context.Background(), model.MovieInput{Nom: "La Môme"}, photo)
	if err != nil {
		t.Fatalf("SaveMovie() error = %v, expected the record to be kept", err)
	}
	if result.PhotoErr == nil {
		t.Error("PhotoErr = nil, expected the upload failure to be reported")
	}
	if result.Movie.ID != "m1" {
		t.Errorf("Movie.ID = %s, expected m1", result.Movie.ID)
	}
}

func TestRemoveActor(t *testing.T) {
	fake := &fakeBackend{}
	service := newTestService(fake)

	if err := service.RemoveActor(context.Background(), "a1"); err != nil {
		t.Fatalf("RemoveActor() error = %v", err)
	}

	fake.mu.Lock()
	deletes := append([]string(nil), fake.actorDeletes...)
	fake.mu.Unlock()
	if len(deletes) != 1 || deletes[0] != "a1" {
		t.Errorf("Expected delete of a1, got %v", deletes)
	}

	if !waitFor(t, func() bool { return len(fake.actorFilterCalls()) >= 1 }) {
		t.Error("Expected a list refresh after delete")
	}
}

func TestRemoveActor_FailureSkipsRefresh(t *testing.T) {
	fake := &fakeBackend{
		deleteActorFunc: func(string) error {
			return errors.New("boom")
		},
	}
	service := newTestService(fake)

	if err := service.RemoveActor(context.Background(), "a1"); err == nil {
		t.Fatal("RemoveActor() error = nil, expected failure")
	}

	time.Sleep(50 * time.Millisecond)
	if calls := fake.actorFilterCalls(); len(calls) != 0 {
		t.Errorf("Expected no refresh after failed delete, got %d fetches", len(calls))
	}
}

func TestRemoveMovie(t *testing.T) {
	fake := &fakeBackend{}
	service := newTestService(fake)

	if err := service.RemoveMovie(context.Background(), "m1"); err != nil {
		t.Fatalf("RemoveMovie() error = %v", err)
	}

	fake.mu.Lock()
	deletes := append([]string(nil), fake.movieDeletes...)
	fake.mu.Unlock()
	if len(deletes) != 1 || deletes[0] != "m1" {
		t.Errorf("Expected delete of m1, got %v", deletes)
	}
}
