package collider

import (
	"image/color"

	"collider/internal/core"
)

// Display values written into the space-time diagram.
const (
	displayEmpty uint8 = iota
	displayStationary
	displayLeft
	displayRight
)

var palette = []color.RGBA{
	displayEmpty:      {R: 12, G: 12, B: 16, A: 255},
	displayStationary: {R: 200, G: 200, B: 200, A: 255},
	displayLeft:       {R: 80, G: 140, B: 255, A: 255},
	displayRight:      {R: 255, G: 110, B: 60, A: 255},
}

// Sim draws a collider run as a space-time diagram: the newest generation is
// the top row and older generations scroll down.
type Sim struct {
	cfg     Config
	rule    Rule
	state   State
	grid    *core.ByteGrid
	gen     int
	settled bool
}

// New returns a collider Sim. Reset must be called before the first Step.
func New(cfg Config) *Sim {
	return &Sim{
		cfg:  cfg,
		rule: cfg.Rule(),
		grid: core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "collider" }

// Size returns the diagram dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Cells exposes the render buffer.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Palette maps display values to colors.
func (s *Sim) Palette() []color.RGBA { return palette }

// State returns the current generation.
func (s *Sim) State() State { return s.state }

// Generation returns how many steps produced a new state since Reset.
func (s *Sim) Generation() int { return s.gen }

// Settled reports whether the run reached a state with no further collisions.
func (s *Sim) Settled() bool { return s.settled }

// Reset draws a new random field. A zero seed uses the configured seed.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.ResetTo(Random(core.NewRNG(seed), s.grid.W, s.cfg.Chances))
}

// ResetTo restarts the diagram from a given field. Cells beyond the diagram
// width are not drawn.
func (s *Sim) ResetTo(st State) {
	s.state = st
	s.gen = 0
	s.settled = false
	s.grid.Clear()
	s.paintTop()
}

// Step advances one generation and scrolls the diagram. Once the field has
// settled the diagram is left unchanged.
func (s *Sim) Step() {
	if s.settled {
		return
	}
	next, ok := s.state.Next(s.rule)
	if !ok {
		s.settled = true
		return
	}
	s.state = next
	s.gen++
	s.grid.ScrollDown()
	s.paintTop()
}

func (s *Sim) paintTop() {
	row := s.grid.Row(0)
	for x := range row {
		row[x] = displayEmpty
		if x < s.state.Len() {
			row[x] = displayValue(s.state.Cell(x))
		}
	}
}

func displayValue(c Cell) uint8 {
	switch {
	case c.Kind == KindStationary:
		return displayStationary
	case c.MovingIn(Left):
		return displayLeft
	case c.MovingIn(Right):
		return displayRight
	}
	return displayEmpty
}

// Parameters describes the running configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(s.grid.W)),
				core.IntParam("h", "History", int64(s.grid.H)),
				core.IntParam("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.BoolParam("bounce", "Bounce", s.rule.Bounce),
				core.BoolParam("damage", "Damage", s.rule.PartialDestroy),
			},
		},
		{
			Name: "Random field",
			Params: []core.Parameter{
				core.IntParam("stationary", "Stationary chance", int64(s.cfg.Chances.Stationary)),
				core.IntParam("left", "Left chance", int64(s.cfg.Chances.Left)),
				core.IntParam("right", "Right chance", int64(s.cfg.Chances.Right)),
				core.IntParam("empty", "Empty chance", int64(s.cfg.Chances.Empty)),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", int64(s.gen)),
				core.BoolParam("settled", "Settled", s.settled),
				core.IntParam("weight", "Total weight", int64(s.state.TotalWeight())),
			},
		},
	}}
}

func init() {
	core.Register("collider", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
