package galactic

import "errors"

// Common registry errors
var (
	ErrUnknownUniverse   = errors.New("unknown universe")
	ErrUniverseExists    = errors.New("universe already registered")
	ErrEmptyUniverseName = errors.New("universe name must not be empty")
)
