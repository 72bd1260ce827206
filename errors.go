package bbviz

import "errors"

var (
	// ErrMalformedInput is returned when hex or binary text cannot be parsed.
	// The bitboard keeps its previous value.
	ErrMalformedInput = errors.New("bbviz: malformed numeric input")
	// ErrNoSuchBoard is returned by Deck operations given an out-of-range index.
	ErrNoSuchBoard = errors.New("bbviz: no such board")
)
