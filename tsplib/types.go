package tsplib

import (
	"errors"

	"github.com/katalvlaran/glsearch/gls"
)

var (
	// ErrUnsupportedFormat indicates a TSPLIB problem type, edge-weight type
	// or data section this package does not read (anything but symmetric EUC_2D).
	ErrUnsupportedFormat = errors.New("tsplib: unsupported format")

	// ErrBadDimension indicates a missing or invalid DIMENSION, or a node
	// section that does not cover 1..DIMENSION exactly once.
	ErrBadDimension = errors.New("tsplib: bad dimension")

	// ErrMalformedLine indicates a line that cannot be parsed.
	ErrMalformedLine = errors.New("tsplib: malformed line")

	// ErrEmptyInstance indicates input without any coordinates.
	ErrEmptyInstance = errors.New("tsplib: no coordinates")
)

// Instance is a parsed problem: a name, an optional comment and the cities
// in index order (TSPLIB id k becomes index k-1).
type Instance struct {
	Name    string
	Comment string
	Cities  []gls.City
}

// Len returns the number of cities.
func (in *Instance) Len() int { return len(in.Cities) }
