package collider

import "slices"

// State is one generation of the field. It is immutable: Next builds a new
// State and leaves the receiver untouched.
type State struct {
	cells []Cell
}

// NewState returns a State holding a copy of cells.
func NewState(cells ...Cell) State {
	return State{cells: slices.Clone(cells)}
}

// Len returns the number of cells in the field.
func (s State) Len() int { return len(s.cells) }

// Cell returns the cell at index i.
func (s State) Cell(i int) Cell { return s.cells[i] }

// Cells returns a copy of the field.
func (s State) Cells() []Cell { return slices.Clone(s.cells) }

// Equal reports whether both states hold the same cells.
func (s State) Equal(o State) bool { return slices.Equal(s.cells, o.cells) }

// TotalWeight sums the weights of every particle on the field.
func (s State) TotalWeight() int {
	total := 0
	for _, c := range s.cells {
		switch c.Kind {
		case KindStationary:
			total += int(c.Weight)
		case KindInMotion:
			total += int(c.Moving.Weight)
		}
	}
	return total
}

// Particles counts the occupied cells.
func (s State) Particles() int {
	n := 0
	for _, c := range s.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Settled reports whether no further collision can happen. It is a cheap,
// conservative check: a state that is not settled may still turn out to be
// collision free. A single cell touches both walls, so a particle there could
// only ever turn in place.
func (s State) Settled() bool {
	if len(s.cells) <= 1 {
		return true
	}
	return s.onlyStationary() || s.driftingAway(Left) || s.driftingAway(Right)
}

func (s State) onlyStationary() bool {
	for _, c := range s.cells {
		if c.Kind == KindInMotion {
			return false
		}
	}
	return true
}

// driftingAway reports whether every particle moves in d and none of them is
// already against the wall it is heading for.
func (s State) driftingAway(d Direction) bool {
	for _, c := range s.cells {
		if !c.IsEmpty() && !c.MovingIn(d) {
			return false
		}
	}
	wall := 0
	if d == Right {
		wall = len(s.cells) - 1
	}
	return !s.cells[wall].MovingIn(d)
}

// Next advances the field by one generation. It returns false when the state
// is settled and no further generation will differ in any interesting way.
func (s State) Next(rule Rule) (State, bool) {
	if s.Settled() {
		return State{}, false
	}
	st := stepper{
		rule:  rule,
		cells: slices.Clone(s.cells),
		done:  make([]bool, len(s.cells)),
	}
	for i := range st.cells {
		if st.done[i] || st.cells[i].Kind != KindInMotion {
			continue
		}
		st.move(i)
	}
	return State{cells: st.cells}, true
}

// push is one pending propagation event: the particle at origin still has to
// take its move.
type push struct {
	origin int
	moving Moving
}

type stepper struct {
	rule  Rule
	cells []Cell
	done  []bool

	train []push
}

// move runs the turn of the particle at i. Particles directly ahead that move
// the same way are bumped along with it; the whole train either advances one
// cell or, when its head meets the wall, stays put while the head turns.
func (st *stepper) move(i int) {
	mover := st.cells[i].Moving
	step := mover.Dir.Step()

	st.train = append(st.train[:0], push{origin: i, moving: mover})
	var res CollisionResult
	for {
		head := st.train[len(st.train)-1]
		target := head.origin + step
		if target < 0 || target >= len(st.cells) {
			st.hitWall(head)
			st.finishTrain()
			return
		}
		res = st.rule.Collide(head.moving, st.cells[target])
		if res.Kind != DestinationEscapes {
			break
		}
		st.train = append(st.train, push{origin: target, moving: Moving{Dir: mover.Dir, Weight: res.Bumped}})
	}

	head := st.train[len(st.train)-1]
	target := head.origin + step
	switch res.Kind {
	case BothDestroyed:
		st.cells[target] = Empty()
		st.done[target] = true
	case MovingWon:
		st.cells[target] = res.Moved.Cell()
		st.done[target] = true
	case DestinationWon:
		st.cells[target] = res.Destination
		// A survivor ahead of the scan has not had its own turn yet.
		st.done[target] = target < i
	}
	// Shift the rest of the train forward, back to front.
	for k := len(st.train) - 1; k > 0; k-- {
		st.cells[st.train[k].origin] = st.train[k-1].moving.Cell()
	}
	st.cells[i] = Empty()
	st.finishTrain()
}

func (st *stepper) hitWall(head push) {
	if st.rule.Bounce {
		st.cells[head.origin] = InMotion(head.moving.Dir.Opposite(), head.moving.Weight)
		return
	}
	st.cells[head.origin] = Stationary(head.moving.Weight)
}

func (st *stepper) finishTrain() {
	for _, p := range st.train {
		st.done[p.origin] = true
	}
}
