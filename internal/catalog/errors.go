package catalog

import "errors"

var (
	// ErrNameRequired reports a save attempt without the mandatory name
	ErrNameRequired = errors.New("name is required")
)
