package model

import (
	"fmt"
	"strings"
)

// Actor represents a catalog actor as served by the backend
type Actor struct {
	ID           string   `json:"id"`
	Nom          string   `json:"nom"`
	Age          *int     `json:"age"`
	Nationalite  string   `json:"nationalite"`
	Biographie   string   `json:"biographie"`
	PhotoProfil  string   `json:"photo_profil"`
	Filmographie []string `json:"filmographie"`
	CreatedAt    APITime  `json:"created_at"`
}

// Movie represents a catalog movie as served by the backend
type Movie struct {
	ID              string   `json:"id"`
	Nom             string   `json:"nom"`
	Annee           *int     `json:"annee"`
	Genre           string   `json:"genre"`
	Description     string   `json:"description"`
	PhotoCouverture string   `json:"photo_couverture"`
	Acteurs         []string `json:"acteurs"`
	LienExterne     string   `json:"lien_externe"`
	CreatedAt       APITime  `json:"created_at"`
}

// ActorInput is the payload sent when creating or updating an actor.
// Photos travel separately through the upload endpoint. On update the
// filmography must echo the current list or the backend resets it.
type ActorInput struct {
	ID           string   `json:"-"`
	Nom          string   `json:"nom" validate:"required"`
	Age          *int     `json:"age"`
	Nationalite  string   `json:"nationalite"`
	Biographie   string   `json:"biographie"`
	Filmographie []string `json:"filmographie"`
}

// IsUpdate reports whether the input targets an existing record
func (in ActorInput) IsUpdate() bool {
	return in.ID != ""
}

// MovieInput is the payload sent when creating or updating a movie
type MovieInput struct {
	ID          string   `json:"-"`
	Nom         string   `json:"nom" validate:"required"`
	Annee       *int     `json:"annee"`
	Genre       string   `json:"genre"`
	Description string   `json:"description"`
	Acteurs     []string `json:"acteurs"`
	LienExterne string   `json:"lien_externe"`
}

// IsUpdate reports whether the input targets an existing record
func (in MovieInput) IsUpdate() bool {
	return in.ID != ""
}

// DisplaySubtitle returns the age and nationality line shown on actor cards
func (a *Actor) DisplaySubtitle() string {
	parts := make([]string, 0, 2)
	if a.Age != nil {
		parts = append(parts, fmt.Sprintf("%d ans", *a.Age))
	}
	if a.Nationalite != "" {
		parts = append(parts, a.Nationalite)
	}
	return strings.Join(parts, " • ")
}

// ShortBio returns the biography truncated to max runes for card display
func (a *Actor) ShortBio(max int) string {
	return excerpt(a.Biographie, max)
}

// DisplayTitle returns the movie name with its release year when known
func (m *Movie) DisplayTitle() string {
	if m.Annee != nil {
		return fmt.Sprintf("%s (%d)", m.Nom, *m.Annee)
	}
	return m.Nom
}

// DisplaySubtitle returns the genre and year line shown on movie cards
func (m *Movie) DisplaySubtitle() string {
	parts := make([]string, 0, 2)
	if m.Genre != "" {
		parts = append(parts, m.Genre)
	}
	if m.Annee != nil {
		parts = append(parts, fmt.Sprintf("%d", *m.Annee))
	}
	return strings.Join(parts, " • ")
}

// ShortDescription returns the description truncated to max runes
func (m *Movie) ShortDescription(max int) string {
	return excerpt(m.Description, max)
}

// excerpt truncates s to max runes, appending an ellipsis when cut
func excerpt(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max]), " ") + "…"
}
