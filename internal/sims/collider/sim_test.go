package collider

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"collider/internal/core"
)

func TestSimDiagram(t *testing.T) {
	c := qt.New(t)
	sim := New(Config{Width: 4, Height: 3})
	sim.ResetTo(NewState(r(5), e, e, l(5)))
	c.Assert(sim.Cells(), qt.DeepEquals, []uint8{
		displayRight, displayEmpty, displayEmpty, displayLeft,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	sim.Step()
	c.Assert(sim.Generation(), qt.Equals, 1)
	c.Assert(sim.State().String(), qt.Equals, "|_><_|")
	c.Assert(sim.Cells(), qt.DeepEquals, []uint8{
		displayEmpty, displayRight, displayLeft, displayEmpty,
		displayRight, displayEmpty, displayEmpty, displayLeft,
		0, 0, 0, 0,
	})

	sim.Step()
	c.Assert(sim.State().String(), qt.Equals, "|____|")
	c.Assert(sim.Settled(), qt.IsFalse)

	before := append([]uint8(nil), sim.Cells()...)
	sim.Step()
	c.Assert(sim.Settled(), qt.IsTrue)
	c.Assert(sim.Generation(), qt.Equals, 2)
	c.Assert(sim.Cells(), qt.DeepEquals, before)
}

func TestSimResetDeterministic(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 8
	sim := New(cfg)
	sim.Reset(0)
	first := sim.State()
	c.Assert(first.Len(), qt.Equals, 32)
	c.Assert(first.Equal(Random(core.NewRNG(cfg.Seed), 32, cfg.Chances)), qt.IsTrue)

	sim.Step()
	sim.Reset(0)
	c.Assert(sim.State().Equal(first), qt.IsTrue)
	c.Assert(sim.Generation(), qt.Equals, 0)
}

func TestSimRegistered(t *testing.T) {
	c := qt.New(t)
	factory, ok := core.Sims()["collider"]
	c.Assert(ok, qt.IsTrue)
	sim := factory(map[string]string{"w": "16", "h": "4", "bounce": "true"})
	c.Assert(sim.Size(), qt.Equals, core.Size{W: 16, H: 4})
	c.Assert(sim.Name(), qt.Equals, "collider")
	_, ok = sim.(core.PaletteProvider)
	c.Assert(ok, qt.IsTrue)
	c.Assert(sim.(*Sim).rule, qt.Equals, Rule{Bounce: true})
}

func TestFromMap(t *testing.T) {
	c := qt.New(t)
	cfg := FromMap(map[string]string{
		"w":          "12",
		"seed":       "9",
		"damage":     "true",
		"left":       "50",
		"right":      "150",
		"stationary": "nope",
	})
	want := DefaultConfig()
	want.Width = 12
	want.Seed = 9
	want.Damage = true
	want.Chances.Left = 50
	c.Assert(cfg, qt.Equals, want)
	c.Assert(cfg.Rule(), qt.Equals, Rule{PartialDestroy: true})
}

func TestParameters(t *testing.T) {
	c := qt.New(t)
	sim := New(Config{Width: 3, Height: 2, Bounce: true})
	sim.ResetTo(NewState(s(4), e, r(2)))
	snap := sim.Parameters()
	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	c.Assert(values["bounce"], qt.Equals, "true")
	c.Assert(values["damage"], qt.Equals, "false")
	c.Assert(values["weight"], qt.Equals, "6")
	c.Assert(values["w"], qt.Equals, "3")
}
