package elementary

import (
	"strconv"

	"collider/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary projects a Wolfram automaton vertically: the newest row is on
// top and history scrolls down.
type Elementary struct {
	rule Wolfram
	row  Row
	grid *core.ByteGrid
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	grid := core.NewByteGrid(w, h)
	return &Elementary{rule: FromCode(rule), row: NewRow(make([]bool, grid.W)), grid: grid}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Row returns the newest generation.
func (e *Elementary) Row() Row { return e.row }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(seed int64) {
	e.grid.Clear()
	for i := range e.row {
		e.row[i] = false
	}
	e.row[e.grid.W/2] = true
	e.paintTop()
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	e.row = e.row.Next(e.rule)
	e.grid.ScrollDown()
	e.paintTop()
}

func (e *Elementary) paintTop() {
	top := e.grid.Row(0)
	for x := range top {
		top[x] = 0
		if x < len(e.row) && e.row[x] {
			top[x] = 1
		}
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
