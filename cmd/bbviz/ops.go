package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/0x5844/bbviz"
)

// operation is one step of an --op sequence.
type operation func(b *bbviz.Board)

var namedOps = map[string]operation{
	"invert":  (*bbviz.Board).Invert,
	"shl":     (*bbviz.Board).ShiftLeft,
	"shr":     (*bbviz.Board).ShiftRight,
	"reset":   (*bbviz.Board).Reset,
	"set-all": (*bbviz.Board).SetAll,
}

// parseOp parses one operation: a name from namedOps or "toggle:R,C" with
// display row and column in 0..7.
func parseOp(text string) (operation, error) {
	text = strings.TrimSpace(text)
	if op, ok := namedOps[strings.ToLower(text)]; ok {
		return op, nil
	}
	name, arg, found := strings.Cut(text, ":")
	if !found || !strings.EqualFold(name, "toggle") {
		return nil, fmt.Errorf("unknown operation %q", text)
	}
	rs, cs, found := strings.Cut(arg, ",")
	if !found {
		return nil, fmt.Errorf("toggle needs ROW,COL, got %q", arg)
	}
	row, err := parseCoord(rs)
	if err != nil {
		return nil, fmt.Errorf("toggle row: %w", err)
	}
	col, err := parseCoord(cs)
	if err != nil {
		return nil, fmt.Errorf("toggle column: %w", err)
	}
	return func(b *bbviz.Board) { b.Toggle(row, col) }, nil
}

func parseCoord(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 || n >= bbviz.NumOfRows {
		return 0, fmt.Errorf("%d is outside 0..%d", n, bbviz.NumOfRows-1)
	}
	return n, nil
}

// parseOps parses every operation before any is applied, so a bad entry
// leaves the board untouched.
func parseOps(texts []string) ([]operation, error) {
	ops := make([]operation, 0, len(texts))
	for _, text := range texts {
		op, err := parseOp(text)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
