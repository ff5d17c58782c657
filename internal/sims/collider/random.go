package collider

import "collider/internal/core"

// Chances holds the relative odds of each cell kind in a random field. A zero
// chance excludes that kind.
type Chances struct {
	Stationary uint `env:"STATIONARY"`
	Left       uint `env:"LEFT"`
	Right      uint `env:"RIGHT"`
	Empty      uint `env:"EMPTY"`
}

// DefaultChances matches the command line defaults.
func DefaultChances() Chances {
	return Chances{Stationary: 20, Left: 20, Right: 20, Empty: 40}
}

// Random draws a field of the given length. Every cell is drawn independently
// and particles get a uniform weight in 1-99. When every chance is zero the
// field is empty.
func Random(rng *core.RNG, length int, c Chances) State {
	if length < 0 {
		length = 0
	}
	cells := make([]Cell, length)
	for i := range cells {
		switch rng.Weighted(c.Stationary, c.Left, c.Right, c.Empty) {
		case 0:
			cells[i] = Stationary(randomWeight(rng))
		case 1:
			cells[i] = InMotion(Left, randomWeight(rng))
		case 2:
			cells[i] = InMotion(Right, randomWeight(rng))
		default:
			cells[i] = Empty()
		}
	}
	return State{cells: cells}
}

func randomWeight(rng *core.RNG) Weight {
	return Weight(rng.IntRange(1, int(MaxWeight)))
}
