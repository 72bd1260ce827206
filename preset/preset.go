// Package preset implements a catalogue of named bitboard masks.
package preset

import "github.com/0x5844/bbviz"

// A Preset is a named mask. Values use the bit-index layout shared by all
// orientations; under OrientationA bit 0 is the bottom-left cell.
type Preset struct {
	name        string
	description string
	value       bbviz.Bitboard
	order       int
}

// Name returns the lookup key, e.g. "row0".
func (p *Preset) Name() string {
	return p.name
}

// Description returns a one-line human description.
func (p *Preset) Description() string {
	return p.description
}

// Value returns the mask.
func (p *Preset) Value() bbviz.Bitboard {
	return p.value
}

// Book is a set of presets searchable by name and by value.
type Book interface {
	// Lookup returns the preset with exactly this name, or nil.
	Lookup(name string) *Preset
	// Find returns the first preset, in catalogue order, whose value equals v. If none matches, Find returns nil.
	Find(v bbviz.Bitboard) *Preset
	// Possible returns the presets whose names start with prefix, in catalogue order. An empty prefix returns all presets.
	Possible(prefix string) []*Preset
}
