package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/FELTRINCyril/cinebase/internal/model"
)

const moviePayload = `{
	"id": "m1",
	"nom": "La Môme",
	"annee": 2007,
	"genre": "Biographie",
	"description": "La vie d'Édith Piaf",
	"photo_couverture": "/uploads/movie_m1_beef4567.jpg",
	"acteurs": ["a1"],
	"lien_externe": "https://www.imdb.com/title/tt0450188/",
	"created_at": "2024-01-15T10:30:00"
}`

func TestClient_ListMovies_Query(t *testing.T) {
	tests := []struct {
		name     string
		filter   model.MovieFilter
		expected string
	}{
		{"empty filter sends no params", model.MovieFilter{}, ""},
		{"genre and year", model.MovieFilter{Genre: "Drame", Annee: "1994"}, "annee=1994&genre=Drame"},
		{"name search", model.MovieFilter{Nom: "môme"}, "nom=m%C3%B4me"},
	}

	for _, test := range tests {
		var gotQuery string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte("[" + moviePayload + "]"))
		}))

		movies, err := client.ListMovies(context.Background(), test.filter)
		if err != nil {
			t.Fatalf("%s: ListMovies() error = %v", test.name, err)
		}

		if gotQuery != test.expected {
			t.Errorf("%s: query = %q, expected %q", test.name, gotQuery, test.expected)
		}
		if len(movies) != 1 || movies[0].Nom != "La Môme" {
			t.Errorf("%s: decoded %d movies, expected La Môme", test.name, len(movies))
		}
	}
}

func TestClient_GetMovie(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(moviePayload))
	}))

	movie, err := client.GetMovie(context.Background(), "m1")
	if err != nil {
		t.Fatalf("GetMovie() error = %v", err)
	}

	if gotPath != "/api/movies/m1" {
		t.Errorf("path = %s, expected /api/movies/m1", gotPath)
	}
	if movie.Annee == nil || *movie.Annee != 2007 {
		t.Errorf("Annee = %v, expected 2007", movie.Annee)
	}
	if movie.LienExterne != "https://www.imdb.com/title/tt0450188/" {
		t.Errorf("LienExterne = %q, expected imdb link", movie.LienExterne)
	}
}

func TestClient_CreateMovie(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(moviePayload))
	}))

	annee := 2007
	_, err := client.CreateMovie(context.Background(), model.MovieInput{
		Nom:   "La Môme",
		Annee: &annee,
		Genre: "Biographie",
	})
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}

	if gotBody["annee"] != float64(2007) {
		t.Errorf("payload annee = %v, expected 2007", gotBody["annee"])
	}
	if list, ok := gotBody["acteurs"].([]any); !ok || list == nil {
		t.Errorf("payload acteurs = %v, expected empty list instead of null", gotBody["acteurs"])
	}
}

func TestClient_CreateMovie_NullYear(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(moviePayload))
	}))

	_, err := client.CreateMovie(context.Background(), model.MovieInput{Nom: "Sans Date"})
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}

	if value, ok := gotBody["annee"]; !ok || value != nil {
		t.Errorf("payload annee = %v, expected explicit null", value)
	}
}

func TestClient_UpdateMovie(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(moviePayload))
	}))

	_, err := client.UpdateMovie(context.Background(), "m1", model.MovieInput{ID: "m1", Nom: "La Môme"})
	if err != nil {
		t.Fatalf("UpdateMovie() error = %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, expected PUT", gotMethod)
	}
	if gotPath != "/api/movies/m1" {
		t.Errorf("path = %s, expected /api/movies/m1", gotPath)
	}
}

func TestClient_UploadMoviePhoto(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"photo_url": "/uploads/movie_m1_beef4567.jpg"}`))
	}))

	photoURL, err := client.UploadMoviePhoto(context.Background(), "m1", "/tmp/covers/affiche.jpg", strings.NewReader("fake jpg bytes"))
	if err != nil {
		t.Fatalf("UploadMoviePhoto() error = %v", err)
	}

	if gotPath != "/api/movies/m1/photo" {
		t.Errorf("path = %s, expected /api/movies/m1/photo", gotPath)
	}
	if photoURL != "/uploads/movie_m1_beef4567.jpg" {
		t.Errorf("photoURL = %q, expected served path", photoURL)
	}
}
