package core

import (
	"slices"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestWeightedSkipsZeroWeights(t *testing.T) {
	c := qt.New(t)
	rng := NewRNG(1)
	counts := make([]int, 4)
	for i := 0; i < 2000; i++ {
		idx := rng.Weighted(0, 3, 0, 1)
		c.Assert(idx == 1 || idx == 3, qt.IsTrue, qt.Commentf("picked %d", idx))
		counts[idx]++
	}
	// Three to one odds.
	c.Assert(counts[1] > 2*counts[3], qt.IsTrue, qt.Commentf("counts %v", counts))
	c.Assert(rng.Weighted(0, 0), qt.Equals, -1)
	c.Assert(rng.Weighted(), qt.Equals, -1)
}

func TestIntRange(t *testing.T) {
	c := qt.New(t)
	rng := NewRNG(2)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := rng.IntRange(1, 4)
		c.Assert(v >= 1 && v <= 4, qt.IsTrue)
		seen[v] = true
	}
	c.Assert(seen, qt.HasLen, 4)
	c.Assert(rng.IntRange(5, 5), qt.Equals, 5)
	c.Assert(rng.IntRange(5, 2), qt.Equals, 5)
}

func TestRNGDeterministic(t *testing.T) {
	c := qt.New(t)
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 20; i++ {
		c.Assert(a.IntRange(0, 1000), qt.Equals, b.IntRange(0, 1000))
	}
}

func TestByteGridScrollDown(t *testing.T) {
	c := qt.New(t)
	g := NewByteGrid(2, 3)
	copy(g.Row(0), []uint8{1, 2})
	copy(g.Row(1), []uint8{3, 4})
	copy(g.Row(2), []uint8{5, 6})
	g.ScrollDown()
	c.Assert(g.Cells(), qt.DeepEquals, []uint8{1, 2, 1, 2, 3, 4})
	c.Assert(g.Index(1, 2), qt.Equals, 5)

	g.Clear()
	c.Assert(slices.Max(g.Cells()), qt.Equals, uint8(0))

	c.Assert(NewByteGrid(0, -1).Cells(), qt.HasLen, 1)
}

func TestFixedStepWait(t *testing.T) {
	c := qt.New(t)
	clock := time.Unix(100, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	var slept []time.Duration
	fs.sleep = func(d time.Duration) {
		slept = append(slept, d)
		clock = clock.Add(d)
	}

	// The first tick is due immediately.
	fs.Wait()
	c.Assert(slept, qt.HasLen, 0)

	fs.Wait()
	c.Assert(slept, qt.DeepEquals, []time.Duration{100 * time.Millisecond})
}

func TestRegistry(t *testing.T) {
	c := qt.New(t)
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	_, ok := Sims()[""]
	c.Assert(ok, qt.IsFalse)
	_, ok = Sims()["nil-factory"]
	c.Assert(ok, qt.IsFalse)

	Register("test-sim", func(map[string]string) Sim { return nil })
	c.Assert(slices.Contains(Names(), "test-sim"), qt.IsTrue)
	c.Assert(slices.IsSorted(Names()), qt.IsTrue)
}

func TestParams(t *testing.T) {
	c := qt.New(t)
	c.Assert(IntParam("w", "Width", 80), qt.Equals, Parameter{Key: "w", Label: "Width", Type: ParamTypeInt, Value: "80"})
	c.Assert(BoolParam("b", "Bounce", true).Value, qt.Equals, "true")
}
