package collider

import (
	"strconv"
	"strings"

	"gopkg.in/errgo.v1"
)

// ErrMalformedCell is the cause of every error returned by Parse.
var ErrMalformedCell = errgo.New("malformed cell")

// Parse decodes a field from whitespace separated tokens:
//
//	_    empty
//	N    stationary, weight N (0-99)
//	-N   moving left
//	+N   moving right
//
// Parsing is all or nothing.
func Parse(raw string) (State, error) {
	tokens := strings.Fields(raw)
	cells := make([]Cell, 0, len(tokens))
	for i, tok := range tokens {
		c, err := parseCell(tok)
		if err != nil {
			return State{}, errgo.WithCausef(nil, ErrMalformedCell, "cell %d (%q): %s", i, tok, err)
		}
		cells = append(cells, c)
	}
	return State{cells: cells}, nil
}

func parseCell(tok string) (Cell, error) {
	if tok == "_" {
		return Empty(), nil
	}
	var left, right bool
	var digits strings.Builder
	for _, r := range tok {
		switch {
		case r == '-' || r == '+':
			if digits.Len() > 0 {
				return Cell{}, errgo.Newf("'%c' must be at the start of a cell", r)
			}
			if r == '-' {
				left = true
			} else {
				right = true
			}
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '_':
			return Cell{}, errgo.New("'_' must be separated from other cells by a space")
		default:
			return Cell{}, errgo.Newf("unexpected character '%c'", r)
		}
	}
	if left && right {
		return Cell{}, errgo.New("only one prefix is allowed")
	}
	if digits.Len() == 0 {
		return Cell{}, errgo.New("missing weight")
	}
	v, err := strconv.Atoi(digits.String())
	if err != nil || v > int(MaxWeight) {
		return Cell{}, errgo.New("value must be between 0 and 99")
	}
	w := Weight(v)
	switch {
	case left:
		return InMotion(Left, w), nil
	case right:
		return InMotion(Right, w), nil
	}
	return Stationary(w), nil
}

// String renders the compact form: one rune per cell between bars.
func (s State) String() string {
	buf := make([]byte, 0, len(s.cells)+2)
	buf = append(buf, '|')
	for _, c := range s.cells {
		buf = append(buf, c.symbol())
	}
	buf = append(buf, '|')
	return string(buf)
}

// Verbose renders every cell's weight and direction in the form read by
// Parse. Each token is followed by a space.
func (s State) Verbose() string {
	var b strings.Builder
	for _, c := range s.cells {
		b.WriteString(c.String())
		b.WriteByte(' ')
	}
	return b.String()
}
