package bbviz

// A Board is one editable bitboard together with the orientation used to address its cells.
// Every mutation ends by handing a fresh View to each attached Renderer, so the grid,
// hex and binary views never disagree once an operation returns.
// A Board is not safe for concurrent use.
type Board struct {
	value       Bitboard
	orientation Orientation
	renderers   []Renderer
}

// Field names the text view an edit came from.
type Field uint8

const (
	NoField     Field = iota // operation did not originate in a text field
	HexField                 // SetFromHex
	BinaryField              // SetFromBinary
)

// View is a consistent snapshot of everything a collaborator needs to draw a board.
type View struct {
	Orientation Orientation
	Value       Bitboard
	Cells       [NumOfRows][NumOfCols]bool // Cells[r][c] is display row r, column c.
	Hex         string
	Binary      string
	RowLabels   [NumOfRows]int
	ColLabels   [NumOfCols]int
	// Source is the text field that triggered this view. Renderers should not
	// overwrite that field, the user is still typing in it.
	Source Field
}

// Renderer receives a View after every board operation.
type Renderer interface {
	Render(View)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(View)

// Render calls f(v).
func (f RendererFunc) Render(v View) { f(v) }

// NewBoard returns a board with value 0 and OrientationA.
func NewBoard() *Board {
	return &Board{orientation: OrientationA}
}

// NewBoardWith returns a board holding value under orientation o.
func NewBoardWith(value Bitboard, o Orientation) *Board {
	if o >= NumOrientations {
		o = OrientationA
	}
	return &Board{value: value, orientation: o}
}

// Copy returns an independent board with the same value and orientation.
// Renderers are not copied.
func (b *Board) Copy() *Board {
	return &Board{value: b.value, orientation: b.orientation}
}

// Attach registers r and immediately renders the current state to it.
func (b *Board) Attach(r Renderer) {
	b.renderers = append(b.renderers, r)
	r.Render(b.snapshot(NoField))
}

// Detach removes every renderer from the board.
func (b *Board) Detach() {
	b.renderers = nil
}

// --- Queries ---

// Value returns the canonical 64-bit value.
func (b *Board) Value() Bitboard { return b.value }

// Orientation returns the active orientation.
func (b *Board) Orientation() Orientation { return b.orientation }

// IsSet reports whether display cell (row, col) is on under the active orientation.
func (b *Board) IsSet(row, col int) bool { return b.value.IsSetAt(b.orientation, row, col) }

// Hex returns the 0x-prefixed hexadecimal text view.
func (b *Board) Hex() string { return b.value.Hex() }

// Binary returns the 0b-prefixed binary text view.
func (b *Board) Binary() string { return b.value.Binary() }

// RowLabels returns the row ruler numbers, top to bottom.
func (b *Board) RowLabels() [NumOfRows]int { return b.orientation.RowLabels() }

// ColLabels returns the column ruler numbers, left to right.
func (b *Board) ColLabels() [NumOfCols]int { return b.orientation.ColLabels() }

// Snapshot returns the current View.
func (b *Board) Snapshot() View { return b.snapshot(NoField) }

func (b *Board) snapshot(source Field) View {
	v := View{
		Orientation: b.orientation,
		Value:       b.value,
		Hex:         b.value.Hex(),
		Binary:      b.value.Binary(),
		RowLabels:   b.orientation.RowLabels(),
		ColLabels:   b.orientation.ColLabels(),
		Source:      source,
	}
	for r := 0; r < NumOfRows; r++ {
		for c := 0; c < NumOfCols; c++ {
			v.Cells[r][c] = b.value.IsSetAt(b.orientation, r, c)
		}
	}
	return v
}

func (b *Board) render(source Field) {
	if len(b.renderers) == 0 {
		return
	}
	v := b.snapshot(source)
	for _, r := range b.renderers {
		r.Render(v)
	}
}

// --- Mutations ---

// Toggle flips the bit of display cell (row, col) under the active orientation.
func (b *Board) Toggle(row, col int) {
	b.value = b.value.ToggleBit(b.orientation, row, col)
	b.render(NoField)
}

// Set replaces the value.
func (b *Board) Set(value Bitboard) {
	b.value = value
	b.render(NoField)
}

// SetFromHex parses text as hexadecimal and stores it. On failure the value is
// left unchanged and an error wrapping ErrMalformedInput is returned; the views
// are re-rendered either way.
func (b *Board) SetFromHex(text string) error {
	v, err := ParseHex(text)
	if err == nil {
		b.value = v
	}
	b.render(HexField)
	return err
}

// SetFromBinary parses text as binary and stores it, with the same failure policy as SetFromHex.
func (b *Board) SetFromBinary(text string) error {
	v, err := ParseBinary(text)
	if err == nil {
		b.value = v
	}
	b.render(BinaryField)
	return err
}

// Reset clears every bit.
func (b *Board) Reset() {
	b.value = EmptyBB
	b.render(NoField)
}

// SetAll sets every bit.
func (b *Board) SetAll() {
	b.value = FullBB
	b.render(NoField)
}

// Invert replaces the value with its 64-bit complement.
func (b *Board) Invert() {
	b.value = b.value.Not()
	b.render(NoField)
}

// ShiftLeft shifts the value left by one bit; the top bit is lost.
func (b *Board) ShiftLeft() {
	b.value = b.value.ShiftLeft()
	b.render(NoField)
}

// ShiftRight shifts the value right by one bit; the bottom bit is lost.
func (b *Board) ShiftRight() {
	b.value = b.value.ShiftRight()
	b.render(NoField)
}

// SetOrientation changes how cells address bits. The value is not touched.
func (b *Board) SetOrientation(o Orientation) {
	if o >= NumOrientations {
		return
	}
	b.orientation = o
	b.render(NoField)
}

// SelectOrientation applies selector text (see ParseOrientation).
// Unrecognized text leaves the orientation unchanged and returns false.
func (b *Board) SelectOrientation(text string) bool {
	o, ok := ParseOrientation(text)
	if !ok {
		return false
	}
	b.SetOrientation(o)
	return true
}
