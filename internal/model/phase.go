package model

// ListPhase represents the lifecycle stage of a fetched entity list
type ListPhase string

const (
	// ListPhaseIdle means no fetch has been issued yet
	ListPhaseIdle ListPhase = "Idle"

	// ListPhaseLoading means a fetch is in flight
	ListPhaseLoading ListPhase = "Loading"

	// ListPhaseDisplayed means the last fetch returned at least one item
	ListPhaseDisplayed ListPhase = "Displayed"

	// ListPhaseEmpty means the last fetch settled with nothing to show
	ListPhaseEmpty ListPhase = "Empty"
)

// String returns the string representation of ListPhase
func (lp ListPhase) String() string {
	return string(lp)
}

// IsLoading returns true if a fetch is currently in flight
func (lp ListPhase) IsLoading() bool {
	return lp == ListPhaseLoading
}

// IsSettled returns true if the list reached a terminal display state
func (lp ListPhase) IsSettled() bool {
	return lp == ListPhaseDisplayed || lp == ListPhaseEmpty
}
