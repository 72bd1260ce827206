package bbviz

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Bitboard is a 64-bit value where each bit is one cell of an 8x8 grid.
// All arithmetic is native uint64, so shifts and inversion truncate to 64 bits.
type Bitboard uint64

// --- Predefined Bitboard Constants ---
// Masks are expressed in bit-index space: bit-row = index / 8, bit-column = index % 8.
// Under OrientationA bit-row 0 is the bottom display row and bit-column 0 the left one.

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB

	Col0BB Bitboard = 0x0101010101010101
	Col7BB Bitboard = Col0BB << 7
	Row0BB Bitboard = 0xFF
	Row7BB Bitboard = Row0BB << (8 * 7)

	BorderBB Bitboard = Col0BB | Col7BB | Row0BB | Row7BB
	NotCol0  Bitboard = ^Col0BB
	NotCol7  Bitboard = ^Col7BB
)

// ColBB returns the mask of bit-column c.
func ColBB(c int) Bitboard { return Col0BB << (c & 7) }

// RowBB returns the mask of bit-row r.
func RowBB(r int) Bitboard { return Row0BB << (8 * (r & 7)) }

// IndexBB returns a bitboard with only bit index set. Returns EmptyBB for indices outside [0,63].
func IndexBB(index int) Bitboard {
	if index < 0 || index >= NumOfSquares {
		return EmptyBB
	}
	return Bitboard(1) << index
}

// --- Bit Manipulation ---

// Set sets bit index.
func (b Bitboard) Set(index int) Bitboard { return b | IndexBB(index) }

// Clear clears bit index.
func (b Bitboard) Clear(index int) Bitboard { return b &^ IndexBB(index) }

// Toggle flips bit index.
func (b Bitboard) Toggle(index int) Bitboard { return b ^ IndexBB(index) }

// Occupied reports whether bit index is set.
func (b Bitboard) Occupied(index int) bool { return b&IndexBB(index) != 0 }

// ToggleBit flips the bit controlled by display cell (r, c) under orientation o.
func (b Bitboard) ToggleBit(o Orientation, r, c int) Bitboard { return b ^ o.Mask(r, c) }

// IsSetAt reports whether display cell (r, c) is on under orientation o.
func (b Bitboard) IsSetAt(o Orientation, r, c int) bool { return b&o.Mask(r, c) != 0 }

// IsEmpty checks if no bit is set.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// Not returns the 64-bit one's complement.
func (b Bitboard) Not() Bitboard { return ^b }

// ShiftLeft shifts one bit toward the most significant end. Bit 63 is discarded.
func (b Bitboard) ShiftLeft() Bitboard { return b << 1 }

// ShiftRight shifts one bit toward the least significant end. Bit 0 is discarded.
func (b Bitboard) ShiftRight() Bitboard { return b >> 1 }

// Reverse reverses the bit order (bit 0 <-> bit 63).
func (b Bitboard) Reverse() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }

// FlipVertical mirrors bit-rows (row 0 <-> row 7).
func (b Bitboard) FlipVertical() Bitboard { return Bitboard(bits.ReverseBytes64(uint64(b))) }

// FlipHorizontal mirrors bit-columns (column 0 <-> column 7).
func (b Bitboard) FlipHorizontal() Bitboard {
	// Reverse64 mirrors both axes; undo the row mirror.
	return b.Reverse().FlipVertical()
}

// LSB returns the index of the least significant set bit, or (-1, false) if empty.
func (b Bitboard) LSB() (int, bool) {
	if b == 0 {
		return -1, false
	}
	return bits.TrailingZeros64(uint64(b)), true
}

// PopLSB returns the least significant set bit and the bitboard without it.
func (b Bitboard) PopLSB() (int, Bitboard, bool) {
	index, ok := b.LSB()
	if !ok {
		return -1, b, false
	}
	return index, b & (b - 1), true
}

// Scan returns the indices of all set bits, ordered LSB to MSB.
func (b Bitboard) Scan() []int {
	indices := make([]int, 0, b.PopCount())
	for tempBB := b; tempBB != 0; {
		index, next, _ := tempBB.PopLSB()
		indices = append(indices, index)
		tempBB = next
	}
	return indices
}

// --- Text Forms ---

// String returns the 64-character binary representation, bit 63 first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// Hex returns the 0x-prefixed lowercase hexadecimal form without padding ("0x0" for zero).
func (b Bitboard) Hex() string {
	return "0x" + strconv.FormatUint(uint64(b), 16)
}

// Binary returns the 0b-prefixed binary form without padding ("0b0" for zero).
func (b Bitboard) Binary() string {
	return "0b" + strconv.FormatUint(uint64(b), 2)
}

// Draw returns an ASCII grid of the bitboard as seen under orientation o, with rulers.
func (b Bitboard) Draw(o Orientation) string {
	var sb strings.Builder
	colRuler := func() {
		sb.WriteString("\n ")
		for c := 0; c < NumOfCols; c++ {
			sb.WriteString(" " + strconv.Itoa(o.ColLabel(c)))
		}
	}
	colRuler()
	sb.WriteString("\n")
	for r := 0; r < NumOfRows; r++ {
		sb.WriteString(strconv.Itoa(o.RowLabel(r)) + " ")
		for c := 0; c < NumOfCols; c++ {
			if b.IsSetAt(o, r, c) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(strconv.Itoa(o.RowLabel(r)) + "\n")
	}
	colRuler()
	sb.WriteString("\n")
	return sb.String()
}

// --- Parsing ---

// ParseHex parses base-16 text. Surrounding whitespace, a 0x/0X prefix and
// underscore digit separators are accepted. Values wider than 64 bits are
// truncated to their low 64 bits.
func ParseHex(text string) (Bitboard, error) {
	b, err := parseRadix(text, 'x', 4)
	if err != nil {
		return 0, fmt.Errorf("%w: hex %q: %v", ErrMalformedInput, text, err)
	}
	return b, nil
}

// ParseBinary parses base-2 text with the same rules as ParseHex and a 0b/0B prefix.
func ParseBinary(text string) (Bitboard, error) {
	b, err := parseRadix(text, 'b', 1)
	if err != nil {
		return 0, fmt.Errorf("%w: binary %q: %v", ErrMalformedInput, text, err)
	}
	return b, nil
}

var errNoDigits = errors.New("no digits")

// parseRadix accumulates digits of a power-of-two radix. Shifting the uint64
// accumulator keeps exactly the low 64 bits of the full value.
func parseRadix(text string, prefix byte, bitsPerDigit uint) (Bitboard, error) {
	s := strings.TrimSpace(text)
	if len(s) >= 2 && s[0] == '0' && (s[1]|0x20) == prefix {
		s = s[2:]
		// A separator may directly follow the prefix: 0x_ff.
		if strings.HasPrefix(s, "_") {
			s = s[1:]
		}
	}
	if s == "" {
		return 0, errNoDigits
	}
	var v uint64
	prevSep := true
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '_' {
			if prevSep {
				return 0, fmt.Errorf("misplaced separator at %d", i)
			}
			prevSep = true
			continue
		}
		d, ok := digitValue(ch)
		if !ok || d >= 1<<bitsPerDigit {
			return 0, fmt.Errorf("invalid digit %q at %d", ch, i)
		}
		v = v<<bitsPerDigit | d
		prevSep = false
	}
	if prevSep {
		return 0, errors.New("trailing separator")
	}
	return Bitboard(v), nil
}

func digitValue(ch byte) (uint64, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return uint64(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return uint64(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return uint64(ch-'A') + 10, true
	}
	return 0, false
}

// --- Serialization ---

// MarshalText implements the encoding.TextMarshaler interface using the Hex form.
func (b Bitboard) MarshalText() ([]byte, error) {
	return []byte(b.Hex()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. Accepts hex text.
func (b *Bitboard) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
