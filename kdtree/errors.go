package kdtree

import "errors"

var (
	// ErrEmptyInput is returned by New when given no trees to index.
	ErrEmptyInput = errors.New("kdtree: no trees to index")
	// ErrEmptyTree is returned by Nearest on an index holding no nodes.
	ErrEmptyTree = errors.New("kdtree: empty tree")
	// ErrInvalidCoordinate is returned when a coordinate is NaN or infinite.
	// NaN comparisons would silently break pruning, so these are rejected
	// at the boundary.
	ErrInvalidCoordinate = errors.New("kdtree: coordinate is not finite")
)
