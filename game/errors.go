package game

import "errors"

var (
	// ErrMalformedInput marks snapshot data that breaks a structural invariant (ragged grid,
	// unit outside the grid, unknown side). It signals a bug upstream and is never clamped.
	ErrMalformedInput = errors.New("malformed input")
	ErrUnknownTerrain = errors.New("unknown terrain")
	ErrUnknownSide    = errors.New("unknown side")
	ErrOccupied       = errors.New("cell already occupied")
)
