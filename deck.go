package bbviz

import "fmt"

// A Deck is an ordered collection of independent boards. Index 0 is the primary
// board, which DeleteLast never removes.
type Deck struct {
	boards []*Board
}

// NewDeck returns a deck holding one fresh board.
func NewDeck() *Deck {
	return &Deck{boards: []*Board{NewBoard()}}
}

// Len returns the number of boards.
func (d *Deck) Len() int { return len(d.boards) }

// Board returns board i.
func (d *Deck) Board(i int) (*Board, error) {
	if i < 0 || i >= len(d.boards) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoSuchBoard, i, len(d.boards))
	}
	return d.boards[i], nil
}

// Boards returns the boards in order. The slice is a copy; the boards are shared.
func (d *Deck) Boards() []*Board {
	out := make([]*Board, len(d.boards))
	copy(out, d.boards)
	return out
}

// Add appends a fresh board (value 0, OrientationA) and returns it.
func (d *Deck) Add() *Board {
	b := NewBoard()
	d.boards = append(d.boards, b)
	return b
}

// Duplicate appends a copy of board i and returns the copy.
func (d *Deck) Duplicate(i int) (*Board, error) {
	src, err := d.Board(i)
	if err != nil {
		return nil, err
	}
	b := src.Copy()
	d.boards = append(d.boards, b)
	return b, nil
}

// DeleteLast removes the most recently added board. It reports false when only
// the primary board remains.
func (d *Deck) DeleteLast() bool {
	if len(d.boards) <= 1 {
		return false
	}
	last := d.boards[len(d.boards)-1]
	last.Detach()
	d.boards[len(d.boards)-1] = nil
	d.boards = d.boards[:len(d.boards)-1]
	return true
}

// Remove deletes board i. The primary board cannot be removed.
func (d *Deck) Remove(i int) error {
	if i == 0 && len(d.boards) > 0 {
		return fmt.Errorf("%w: the primary board cannot be removed", ErrNoSuchBoard)
	}
	b, err := d.Board(i)
	if err != nil {
		return err
	}
	b.Detach()
	d.boards = append(d.boards[:i], d.boards[i+1:]...)
	return nil
}
