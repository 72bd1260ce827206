// Package bbviz models 64-bit bitboards for visual editing.
//
// A Bitboard maps the cells of an 8x8 grid onto the bits of a uint64. An
// Orientation decides which display corner holds bit 0:
//
//	A  rows: ↑, columns: →   index = 8*(7-r) + c
//	B  rows: ↓, columns: →   index = 8*r + c
//	C  rows: ↑, columns: ←   index = 8*(7-r) + (7-c)
//	D  rows: ↓, columns: ←   index = 8*r + (7-c)
//
// A Board couples one value with one orientation and keeps the grid, hex and
// binary views in step by rendering a View after every operation. A Deck holds
// several boards side by side.
package bbviz
