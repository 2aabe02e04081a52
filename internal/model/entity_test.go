package model

import (
	"encoding/json"
	"testing"
)

func intp(v int) *int {
	return &v
}

func TestActor_DisplaySubtitle(t *testing.T) {
	tests := []struct {
		age         *int
		nationalite string
		expected    string
	}{
		{intp(48), "Française", "48 ans • Française"},
		{intp(52), "", "52 ans"},
		{nil, "Française", "Française"},
		{nil, "", ""},
	}

	for _, test := range tests {
		actor := &Actor{Age: test.age, Nationalite: test.nationalite}
		result := actor.DisplaySubtitle()
		if result != test.expected {
			t.Errorf("DisplaySubtitle() with age=%v, nationalite='%s' = '%s', expected '%s'",
				test.age, test.nationalite, result, test.expected)
		}
	}
}

func TestMovie_DisplayTitle(t *testing.T) {
	tests := []struct {
		nom      string
		annee    *int
		expected string
	}{
		{"La Môme", intp(2007), "La Môme (2007)"},
		{"The Artist", intp(2011), "The Artist (2011)"},
		{"Sans Date", nil, "Sans Date"},
	}

	for _, test := range tests {
		movie := &Movie{Nom: test.nom, Annee: test.annee}
		result := movie.DisplayTitle()
		if result != test.expected {
			t.Errorf("DisplayTitle() with nom='%s', annee=%v = '%s', expected '%s'",
				test.nom, test.annee, result, test.expected)
		}
	}
}

func TestMovie_DisplaySubtitle(t *testing.T) {
	tests := []struct {
		genre    string
		annee    *int
		expected string
	}{
		{"Drame", intp(1994), "Drame • 1994"},
		{"Biographie", nil, "Biographie"},
		{"", intp(2011), "2011"},
		{"", nil, ""},
	}

	for _, test := range tests {
		movie := &Movie{Genre: test.genre, Annee: test.annee}
		result := movie.DisplaySubtitle()
		if result != test.expected {
			t.Errorf("DisplaySubtitle() with genre='%s', annee=%v = '%s', expected '%s'",
				test.genre, test.annee, result, test.expected)
		}
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"", 10, ""},
		{"court", 10, "court"},
		{"exactement dix!", 15, "exactement dix!"},
		{"une très longue biographie", 12, "une très lon…"},
		{"coupe après espace", 6, "coupe…"},
		{"peu importe", 0, ""},
	}

	for _, test := range tests {
		result := excerpt(test.input, test.max)
		if result != test.expected {
			t.Errorf("excerpt('%s', %d) = '%s', expected '%s'",
				test.input, test.max, result, test.expected)
		}
	}
}

func TestActor_DecodeWireFormat(t *testing.T) {
	payload := `{
		"id": "a1",
		"nom": "Marion Cotillard",
		"age": 48,
		"nationalite": "Française",
		"biographie": "Actrice française oscarisée",
		"photo_profil": "/uploads/actor_a1_deadbeef.jpg",
		"filmographie": ["m1", "m2"],
		"created_at": "2024-01-15T10:30:00.123456"
	}`

	var actor Actor
	if err := json.Unmarshal([]byte(payload), &actor); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if actor.Nom != "Marion Cotillard" {
		t.Errorf("Nom = '%s', expected 'Marion Cotillard'", actor.Nom)
	}
	if actor.Age == nil || *actor.Age != 48 {
		t.Errorf("Age = %v, expected 48", actor.Age)
	}
	if actor.PhotoProfil != "/uploads/actor_a1_deadbeef.jpg" {
		t.Errorf("PhotoProfil = '%s', expected upload path", actor.PhotoProfil)
	}
	if len(actor.Filmographie) != 2 {
		t.Errorf("len(Filmographie) = %d, expected 2", len(actor.Filmographie))
	}
	if actor.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, expected parsed timestamp")
	}
}

func TestMovie_DecodeNullOptionals(t *testing.T) {
	payload := `{
		"id": "m1",
		"nom": "The Artist",
		"annee": null,
		"genre": null,
		"description": null,
		"photo_couverture": null,
		"acteurs": [],
		"lien_externe": null,
		"created_at": null
	}`

	var movie Movie
	if err := json.Unmarshal([]byte(payload), &movie); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if movie.Annee != nil {
		t.Errorf("Annee = %v, expected nil", movie.Annee)
	}
	if movie.Genre != "" {
		t.Errorf("Genre = '%s', expected empty", movie.Genre)
	}
	if !movie.CreatedAt.IsZero() {
		t.Errorf("CreatedAt = %v, expected zero", movie.CreatedAt)
	}
}

func TestActorInput_IsUpdate(t *testing.T) {
	tests := []struct {
		id       string
		expected bool
	}{
		{"", false},
		{"a1", true},
	}

	for _, test := range tests {
		in := ActorInput{ID: test.id, Nom: "Jean Dujardin"}
		result := in.IsUpdate()
		if result != test.expected {
			t.Errorf("IsUpdate() with id='%s' = %v, expected %v", test.id, result, test.expected)
		}
	}
}
