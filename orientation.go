package bbviz

import (
	"fmt"
	"strings"
)

// Orientation selects how a (row, column) display coordinate is mapped onto a bit index.
// Row 0 is always the top display row and column 0 the leftmost display column;
// the orientation decides which physical corner holds bit 0.
type Orientation uint8

const (
	OrientationA Orientation = iota // rows increase upward, columns increase rightward (bit 0 bottom-left)
	OrientationB                    // rows increase downward, columns increase rightward (bit 0 top-left)
	OrientationC                    // rows increase upward, columns increase leftward (bit 0 bottom-right)
	OrientationD                    // rows increase downward, columns increase leftward (bit 0 top-right)
	NumOrientations
)

// Grid geometry.
const (
	NumOfSquares = 64
	NumOfRows    = 8
	NumOfCols    = 8
)

var orientationNames = [NumOrientations]string{
	OrientationA: "rows: ↑, columns: →",
	OrientationB: "rows: ↓, columns: →",
	OrientationC: "rows: ↑, columns: ←",
	OrientationD: "rows: ↓, columns: ←",
}

// Orientations lists every variant in selector order.
func Orientations() []Orientation {
	return []Orientation{OrientationA, OrientationB, OrientationC, OrientationD}
}

// --- Axis directions ---

// RowsUp reports whether row labels increase toward the top edge.
func (o Orientation) RowsUp() bool { return o == OrientationA || o == OrientationC }

// ColsLeft reports whether column labels increase toward the left edge.
func (o Orientation) ColsLeft() bool { return o == OrientationC || o == OrientationD }

// --- Mapping ---

// RowLabel returns the ruler number shown beside display row r.
// The label is also the bit-row (index / 8) addressed by that display row.
func (o Orientation) RowLabel(r int) int {
	r &= 7
	if o.RowsUp() {
		return 7 - r
	}
	return r
}

// ColLabel returns the ruler number shown under display column c.
// The label is also the bit-column (index % 8) addressed by that display column.
func (o Orientation) ColLabel(c int) int {
	c &= 7
	if o.ColsLeft() {
		return 7 - c
	}
	return c
}

// BitIndex returns the bit index in [0,63] controlled by the cell at (r, c).
func (o Orientation) BitIndex(r, c int) int {
	return 8*o.RowLabel(r) + o.ColLabel(c)
}

// Mask returns a bitboard with only the bit of cell (r, c) set.
func (o Orientation) Mask(r, c int) Bitboard {
	return Bitboard(1) << o.BitIndex(r, c)
}

// Cell returns the display coordinate holding bit index. It is the inverse of BitIndex.
// Both axis flips are involutions, so the label functions invert themselves.
func (o Orientation) Cell(index int) (r, c int) {
	index &= 63
	return o.RowLabel(index / 8), o.ColLabel(index % 8)
}

// RowLabels returns the ruler numbers for display rows top to bottom.
func (o Orientation) RowLabels() [NumOfRows]int {
	var labels [NumOfRows]int
	for r := range labels {
		labels[r] = o.RowLabel(r)
	}
	return labels
}

// ColLabels returns the ruler numbers for display columns left to right.
func (o Orientation) ColLabels() [NumOfCols]int {
	var labels [NumOfCols]int
	for c := range labels {
		labels[c] = o.ColLabel(c)
	}
	return labels
}

// --- Naming and parsing ---

// String returns the selector display string, e.g. "rows: ↑, columns: →".
func (o Orientation) String() string {
	if o >= NumOrientations {
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
	return orientationNames[o]
}

// Letter returns the short variant name "A".."D".
func (o Orientation) Letter() string {
	if o >= NumOrientations {
		return "?"
	}
	return string(rune('A' + o))
}

// Next returns the following variant, wrapping from D back to A.
func (o Orientation) Next() Orientation {
	return (o + 1) % NumOrientations
}

// ParseOrientation resolves selector text into an Orientation.
// It accepts the display string, the letter (A-D, any case) or the selector index (0-3).
// Unrecognized text returns false.
func ParseOrientation(text string) (Orientation, bool) {
	s := strings.TrimSpace(text)
	for _, o := range Orientations() {
		if s == orientationNames[o] {
			return o, true
		}
	}
	if len(s) != 1 {
		return OrientationA, false
	}
	switch ch := s[0]; {
	case ch >= 'A' && ch <= 'D':
		return Orientation(ch - 'A'), true
	case ch >= 'a' && ch <= 'd':
		return Orientation(ch - 'a'), true
	case ch >= '0' && ch <= '3':
		return Orientation(ch - '0'), true
	}
	return OrientationA, false
}

// MarshalText implements the encoding.TextMarshaler interface using the letter form.
func (o Orientation) MarshalText() ([]byte, error) {
	if o >= NumOrientations {
		return nil, fmt.Errorf("bbviz: invalid orientation %d", uint8(o))
	}
	return []byte(o.Letter()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Any form accepted by ParseOrientation is valid.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, ok := ParseOrientation(string(text))
	if !ok {
		return fmt.Errorf("bbviz: unknown orientation %q", text)
	}
	*o = parsed
	return nil
}
