package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/juju/gnuflag"
	"gopkg.in/errgo.v1"

	"collider/internal/sims/elementary"
)

type simpleOptions struct {
	Rule        uint
	State       string
	Generations uint
}

func newSimpleOptions() *simpleOptions {
	return &simpleOptions{Rule: 154, Generations: 32}
}

// Bind attaches the options to the provided FlagSet.
func (o *simpleOptions) Bind(fs *gnuflag.FlagSet) {
	for _, name := range []string{"r", "rule"} {
		fs.UintVar(&o.Rule, name, o.Rule, "Wolfram code for the automaton")
	}
	for _, name := range []string{"s", "state"} {
		fs.StringVar(&o.State, name, o.State, "initial state, any non-whitespace character is on")
	}
	for _, name := range []string{"g", "generations"} {
		fs.UintVar(&o.Generations, name, o.Generations, "number of generations to run")
	}
}

func (o *simpleOptions) Run(w io.Writer) error {
	if o.Rule > 255 {
		return errgo.Newf("rule %d out of range 0-255", o.Rule)
	}
	rule := elementary.FromCode(uint8(o.Rule))
	raw := o.State
	if raw == "" {
		pad := strings.Repeat(" ", 60)
		raw = pad + "X" + pad
	}
	row := elementary.ParseRow(raw)
	logger.Debugf("rule %d, %d cells, %d generations", o.Rule, len(row), o.Generations)
	if o.Generations == 0 {
		fmt.Fprintln(w, row)
	}
	for i := uint(0); i < o.Generations; i++ {
		fmt.Fprintf(w, "|%s|\n", row)
		row = row.Next(rule)
	}
	return nil
}
