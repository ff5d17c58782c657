package collider

// Rule configures how collisions and walls behave.
type Rule struct {
	// Bounce reverses a particle that reaches the end of the field instead
	// of bringing it to rest.
	Bounce bool
	// PartialDestroy leaves the survivor of an unequal collision with the
	// weight difference ("damage") instead of the larger weight ("winner
	// takes all").
	PartialDestroy bool
}

// ResultKind discriminates the variants of CollisionResult.
type ResultKind uint8

const (
	// BothDestroyed: equal weights annihilate.
	BothDestroyed ResultKind = iota
	// MovingWon: the destination becomes Moved.
	MovingWon
	// DestinationWon: the destination becomes Destination.
	DestinationWon
	// DestinationEscapes: both travel the same way. The destination becomes
	// Moved and the particle that was there, of weight Bumped, must take its
	// own move further along.
	DestinationEscapes
)

func (k ResultKind) String() string {
	switch k {
	case BothDestroyed:
		return "both destroyed"
	case MovingWon:
		return "moving won"
	case DestinationWon:
		return "destination won"
	case DestinationEscapes:
		return "destination escapes"
	}
	return "unknown"
}

// CollisionResult is the outcome of moving a particle into a cell.
type CollisionResult struct {
	Kind        ResultKind
	Moved       Moving
	Destination Cell
	Bumped      Weight
}

// Collide resolves moving entering the cell dest.
func (r Rule) Collide(moving Moving, dest Cell) CollisionResult {
	switch dest.Kind {
	case KindEmpty:
		return CollisionResult{Kind: MovingWon, Moved: moving}
	case KindStationary:
		return r.weigh(moving, dest.Weight, Stationary)
	case KindInMotion:
		if dest.Moving.Dir == moving.Dir {
			return CollisionResult{Kind: DestinationEscapes, Moved: moving, Bumped: dest.Moving.Weight}
		}
		dir := dest.Moving.Dir
		return r.weigh(moving, dest.Moving.Weight, func(w Weight) Cell { return InMotion(dir, w) })
	}
	panic("collider: unknown cell kind")
}

// weigh settles a head-on collision. survivor rebuilds the destination in its
// original kind when it outweighs the mover.
func (r Rule) weigh(moving Moving, other Weight, survivor func(Weight) Cell) CollisionResult {
	m := moving.Weight
	if m == other {
		return CollisionResult{Kind: BothDestroyed}
	}
	w := max(m, other)
	if r.PartialDestroy {
		w = abs(m - other)
	}
	if m > other {
		return CollisionResult{Kind: MovingWon, Moved: Moving{Dir: moving.Dir, Weight: w}}
	}
	return CollisionResult{Kind: DestinationWon, Destination: survivor(w)}
}

func abs(w Weight) Weight {
	if w < 0 {
		return -w
	}
	return w
}
