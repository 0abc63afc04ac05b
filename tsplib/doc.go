// Package tsplib reads city coordinates for the gls solver.
//
// Two text formats are supported:
//
//   - TSPLIB with EDGE_WEIGHT_TYPE EUC_2D: a "KEY: value" header followed by
//     NODE_COORD_SECTION lines "<id> <x> <y>" and an optional EOF marker.
//     Ids are 1-based and must cover 1..DIMENSION exactly once.
//   - Plain XY: one "<x> <y>" pair per line; blank lines and lines starting
//     with '#' are skipped.
//
// Load picks the format from the content: a file whose first meaningful
// line is a TSPLIB header keyword is parsed as TSPLIB, anything else as XY.
//
// The classic berlin52 instance (optimal tour length 7542) is embedded and
// available through Berlin52.
//
// Errors are sentinels (ErrUnsupportedFormat, ErrBadDimension,
// ErrMalformedLine, ErrEmptyInstance) wrapped with the offending line number.
package tsplib
