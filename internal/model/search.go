package model

// SearchResults aggregates the global search response across both kinds
type SearchResults struct {
	Actors []Actor `json:"actors"`
	Movies []Movie `json:"movies"`
}

// Total returns the combined number of matches
func (sr SearchResults) Total() int {
	return len(sr.Actors) + len(sr.Movies)
}

// IsEmpty reports whether the search matched nothing
func (sr SearchResults) IsEmpty() bool {
	return sr.Total() == 0
}
