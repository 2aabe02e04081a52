package model

import (
	"net/url"
	"strconv"
)

// ActorFilter holds the actor list filter controls. Text fields mirror the
// filter bar entries unchanged; empty fields stay out of the query string.
type ActorFilter struct {
	Search      string
	Nom         string
	Nationalite string
	AgeMin      string
	AgeMax      string
	Limit       int
}

// Values returns the filter as URL query parameters, skipping empty fields
func (f ActorFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "search", f.Search)
	setNonEmpty(v, "nom", f.Nom)
	setNonEmpty(v, "nationalite", f.Nationalite)
	setNonEmpty(v, "age_min", f.AgeMin)
	setNonEmpty(v, "age_max", f.AgeMax)
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// IsZero reports whether every user-facing filter control is empty
func (f ActorFilter) IsZero() bool {
	return f.Search == "" && f.Nom == "" && f.Nationalite == "" &&
		f.AgeMin == "" && f.AgeMax == ""
}

// MovieFilter holds the movie list filter controls
type MovieFilter struct {
	Search string
	Nom    string
	Genre  string
	Annee  string
	Limit  int
}

// Values returns the filter as URL query parameters, skipping empty fields
func (f MovieFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "search", f.Search)
	setNonEmpty(v, "nom", f.Nom)
	setNonEmpty(v, "genre", f.Genre)
	setNonEmpty(v, "annee", f.Annee)
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// IsZero reports whether every user-facing filter control is empty
func (f MovieFilter) IsZero() bool {
	return f.Search == "" && f.Nom == "" && f.Genre == "" && f.Annee == ""
}

func setNonEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
