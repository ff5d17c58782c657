package elementary

import (
	"strings"
	"unicode"
)

// Wolfram is an elementary rule decoded from its 8-bit code, see
// https://en.wikipedia.org/wiki/Elementary_cellular_automaton#The_numbering_system
type Wolfram struct {
	lookup [8]bool
}

// FromCode decodes a Wolfram code.
func FromCode(code uint8) Wolfram {
	var w Wolfram
	for i := range w.lookup {
		w.lookup[i] = code&(1<<i) != 0
	}
	return w
}

// Merge returns the next value of a cell given its neighbourhood.
func (w Wolfram) Merge(left, center, right bool) bool {
	idx := 0
	if left {
		idx |= 4
	}
	if center {
		idx |= 2
	}
	if right {
		idx |= 1
	}
	return w.lookup[idx]
}

// Row is one generation of an elementary automaton. The ends wrap around.
type Row []bool

// NewRow copies cells, padding with off cells to a minimum of three.
func NewRow(cells []bool) Row {
	row := make(Row, max(len(cells), 3))
	copy(row, cells)
	return row
}

// ParseRow reads whitespace as off and any other rune as on.
func ParseRow(raw string) Row {
	var cells []bool
	for _, r := range raw {
		cells = append(cells, !unicode.IsSpace(r))
	}
	return NewRow(cells)
}

// Next computes the following generation.
func (row Row) Next(rule Wolfram) Row {
	n := len(row)
	next := make(Row, n)
	for x := range row {
		next[x] = rule.Merge(row[(x-1+n)%n], row[x], row[(x+1)%n])
	}
	return next
}

// String renders on cells as 'X' and off cells as spaces.
func (row Row) String() string {
	var b strings.Builder
	b.Grow(len(row))
	for _, on := range row {
		if on {
			b.WriteByte('X')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
