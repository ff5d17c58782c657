package collider

import "strconv"

// Weight is the mass of a particle. Text encodings restrict it to 0-99.
type Weight int8

// MaxWeight is the largest weight accepted by Parse.
const MaxWeight Weight = 99

// Direction is the heading of a particle in motion.
type Direction uint8

const (
	Left Direction = iota
	Right
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// Step returns the index offset of one move in this direction.
func (d Direction) Step() int {
	if d == Left {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Moving is a particle in transit between cells.
type Moving struct {
	Dir    Direction
	Weight Weight
}

// CellKind discriminates the variants of Cell.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindStationary
	KindInMotion
)

// Cell is the content of one position on the line. Weight is only meaningful
// for KindStationary and Moving only for KindInMotion; the constructors keep
// the unused payload zeroed so cells compare with ==.
type Cell struct {
	Kind   CellKind
	Weight Weight
	Moving Moving
}

// Empty returns an unoccupied cell.
func Empty() Cell { return Cell{} }

// Stationary returns a cell holding an immobile particle.
func Stationary(w Weight) Cell { return Cell{Kind: KindStationary, Weight: w} }

// InMotion returns a cell holding a particle that moves in d.
func InMotion(d Direction, w Weight) Cell {
	return Cell{Kind: KindInMotion, Moving: Moving{Dir: d, Weight: w}}
}

// Cell wraps the particle back into a cell.
func (m Moving) Cell() Cell { return InMotion(m.Dir, m.Weight) }

// IsEmpty reports whether the cell is unoccupied.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// MovingIn reports whether the cell holds a particle moving in d.
func (c Cell) MovingIn(d Direction) bool {
	return c.Kind == KindInMotion && c.Moving.Dir == d
}

// String returns the verbose token for the cell, as accepted by Parse.
func (c Cell) String() string {
	switch c.Kind {
	case KindStationary:
		return strconv.Itoa(int(c.Weight))
	case KindInMotion:
		if c.Moving.Dir == Left {
			return "-" + strconv.Itoa(int(c.Moving.Weight))
		}
		return "+" + strconv.Itoa(int(c.Moving.Weight))
	default:
		return "_"
	}
}

// symbol returns the single-rune compact form of the cell.
func (c Cell) symbol() byte {
	switch c.Kind {
	case KindStationary:
		return 'X'
	case KindInMotion:
		if c.Moving.Dir == Left {
			return '<'
		}
		return '>'
	default:
		return '_'
	}
}
