package api

import (
	"context"
	"net/http"
	"testing"
)

func TestClient_Search(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"actors": [` + actorPayload + `], "movies": [` + moviePayload + `]}`))
	}))

	results, err := client.Search(context.Background(), "la môme")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotPath != "/api/search" {
		t.Errorf("path = %s, expected /api/search", gotPath)
	}
	if gotQuery != "q=la+m%C3%B4me" {
		t.Errorf("query = %q, expected encoded q param", gotQuery)
	}
	if results.Total() != 2 {
		t.Errorf("Total() = %d, expected 2", results.Total())
	}
	if len(results.Actors) != 1 || results.Actors[0].Nom != "Marion Cotillard" {
		t.Errorf("Actors = %d entries, expected Marion Cotillard", len(results.Actors))
	}
}

func TestClient_Genres(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/genres" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"genres": ["Biographie", "Drame"]}`))
	}))

	genres, err := client.Genres(context.Background())
	if err != nil {
		t.Fatalf("Genres() error = %v", err)
	}

	if len(genres) != 2 || genres[0] != "Biographie" || genres[1] != "Drame" {
		t.Errorf("Genres() = %v, expected [Biographie Drame]", genres)
	}
}

func TestClient_Nationalities(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/nationalities" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"nationalities": ["Américaine", "Française"]}`))
	}))

	nationalities, err := client.Nationalities(context.Background())
	if err != nil {
		t.Fatalf("Nationalities() error = %v", err)
	}

	if len(nationalities) != 2 || nationalities[1] != "Française" {
		t.Errorf("Nationalities() = %v, expected [Américaine Française]", nationalities)
	}
}
