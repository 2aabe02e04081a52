package model

import "testing"

func TestActorFilter_Values(t *testing.T) {
	tests := []struct {
		name     string
		filter   ActorFilter
		expected string
	}{
		{"empty filter", ActorFilter{}, ""},
		{"search only", ActorFilter{Search: "cotillard"}, "search=cotillard"},
		{"nationality and ages", ActorFilter{Nationalite: "Française", AgeMin: "30", AgeMax: "60"},
			"age_max=60&age_min=30&nationalite=Fran%C3%A7aise"},
		{"limit included", ActorFilter{Nom: "Jean", Limit: 20}, "limit=20&nom=Jean"},
		{"zero limit omitted", ActorFilter{Nom: "Jean"}, "nom=Jean"},
	}

	for _, test := range tests {
		result := test.filter.Values().Encode()
		if result != test.expected {
			t.Errorf("%s: Values().Encode() = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestMovieFilter_Values(t *testing.T) {
	tests := []struct {
		name     string
		filter   MovieFilter
		expected string
	}{
		{"empty filter", MovieFilter{}, ""},
		{"genre and year", MovieFilter{Genre: "Drame", Annee: "1994"}, "annee=1994&genre=Drame"},
		{"search only", MovieFilter{Search: "artist"}, "search=artist"},
		{"all controls", MovieFilter{Search: "la", Nom: "môme", Genre: "Biographie", Annee: "2007", Limit: 50},
			"annee=2007&genre=Biographie&limit=50&nom=m%C3%B4me&search=la"},
	}

	for _, test := range tests {
		result := test.filter.Values().Encode()
		if result != test.expected {
			t.Errorf("%s: Values().Encode() = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestActorFilter_IsZero(t *testing.T) {
	tests := []struct {
		filter   ActorFilter
		expected bool
	}{
		{ActorFilter{}, true},
		{ActorFilter{Limit: 50}, true},
		{ActorFilter{Search: "x"}, false},
		{ActorFilter{AgeMax: "60"}, false},
	}

	for _, test := range tests {
		result := test.filter.IsZero()
		if result != test.expected {
			t.Errorf("IsZero() for %+v = %v, expected %v", test.filter, result, test.expected)
		}
	}
}

func TestMovieFilter_IsZero(t *testing.T) {
	tests := []struct {
		filter   MovieFilter
		expected bool
	}{
		{MovieFilter{}, true},
		{MovieFilter{Limit: 100}, true},
		{MovieFilter{Genre: "Drame"}, false},
		{MovieFilter{Annee: "1994"}, false},
	}

	for _, test := range tests {
		result := test.filter.IsZero()
		if result != test.expected {
			t.Errorf("IsZero() for %+v = %v, expected %v", test.filter, result, test.expected)
		}
	}
}
