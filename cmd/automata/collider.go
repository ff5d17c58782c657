package main

import (
	"fmt"
	"io"

	"github.com/juju/gnuflag"
	"gopkg.in/errgo.v1"

	"collider/internal/config"
	"collider/internal/core"
	"collider/internal/scenario"
	"collider/internal/sims/collider"
)

type colliderOptions struct {
	Bounce      bool
	Damage      bool
	State       string
	Random      bool
	Scenario    string
	Name        string
	Width       int
	Seed        int64
	Chances     collider.Chances
	Generations uint
	Debug       bool
	TPS         int
}

// newColliderOptions returns the defaults, overridden by any COLLIDER_*
// environment variables.
func newColliderOptions() (*colliderOptions, error) {
	cfg := collider.DefaultConfig()
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, errgo.Mask(err)
	}
	return &colliderOptions{
		Bounce:  cfg.Bounce,
		Damage:  cfg.Damage,
		Width:   cfg.Width,
		Seed:    cfg.Seed,
		Chances: cfg.Chances,
	}, nil
}

// Bind attaches the options to the provided FlagSet.
func (o *colliderOptions) Bind(fs *gnuflag.FlagSet) {
	for _, name := range []string{"b", "bounce"} {
		fs.BoolVar(&o.Bounce, name, o.Bounce, "cells bounce off the ends of the field instead of coming to a stop")
	}
	for _, name := range []string{"d", "damage"} {
		fs.BoolVar(&o.Damage, name, o.Damage, "colliding cells take damage instead of 'winner takes all'")
	}
	for _, name := range []string{"s", "state"} {
		fs.StringVar(&o.State, name, o.State, "initial state: '_' is empty, 0-99 is stationary, prefix '-' moves left and '+' moves right; cells separated by spaces")
	}
	for _, name := range []string{"r", "random"} {
		fs.BoolVar(&o.Random, name, o.Random, "generate a random initial state")
	}
	fs.StringVar(&o.Scenario, "scenario", o.Scenario, "YAML scenario file")
	fs.StringVar(&o.Name, "name", o.Name, "scenario to run from --scenario")
	fs.IntVar(&o.Width, "rand-width", o.Width, "random initial state width, in cells")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for the random initial state")
	fs.UintVar(&o.Chances.Stationary, "rand-stationary", o.Chances.Stationary, "weighted chance of a stationary object")
	fs.UintVar(&o.Chances.Left, "rand-left", o.Chances.Left, "weighted chance of a left-moving object")
	fs.UintVar(&o.Chances.Right, "rand-right", o.Chances.Right, "weighted chance of a right-moving object")
	fs.UintVar(&o.Chances.Empty, "rand-empty", o.Chances.Empty, "weighted chance of an empty cell")
	for _, name := range []string{"g", "generations"} {
		fs.UintVar(&o.Generations, name, o.Generations, "number of generations to run, 0 runs until no more collisions are possible")
	}
	fs.BoolVar(&o.Debug, "debug", o.Debug, "print weights as well as directions")
	fs.IntVar(&o.TPS, "tps", o.TPS, "generations printed per second, 0 prints as fast as possible")
}

func (o *colliderOptions) validate() error {
	sources := 0
	for _, set := range []bool{o.State != "", o.Random, o.Scenario != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return errgo.New("exactly one of --state, --random or --scenario is required")
	}
	if o.Scenario != "" && o.Name == "" {
		return errgo.New("--scenario requires --name")
	}
	if o.Random && o.Width <= 0 {
		return errgo.Newf("random width must be positive, got %d", o.Width)
	}
	for _, c := range []uint{o.Chances.Stationary, o.Chances.Left, o.Chances.Right, o.Chances.Empty} {
		if c >= 100 {
			return errgo.Newf("random chances must be in 0-99, got %d", c)
		}
	}
	return nil
}

// setup resolves the starting field and rule from whichever source was given.
func (o *colliderOptions) setup() (collider.State, collider.Rule, error) {
	rule := collider.Rule{Bounce: o.Bounce, PartialDestroy: o.Damage}
	switch {
	case o.State != "":
		st, err := collider.Parse(o.State)
		if err != nil {
			return collider.State{}, rule, errgo.Mask(err, errgo.Is(collider.ErrMalformedCell))
		}
		return st, rule, nil
	case o.Scenario != "":
		f, err := scenario.Load(o.Scenario)
		if err != nil {
			return collider.State{}, rule, errgo.Mask(err, errgo.Any)
		}
		sc, err := f.Find(o.Name)
		if err != nil {
			return collider.State{}, rule, errgo.Mask(err, errgo.Is(scenario.ErrNotFound))
		}
		if o.Generations == 0 {
			o.Generations = sc.Generations
		}
		return sc.Initial(), sc.Rule(), nil
	}
	return collider.Random(core.NewRNG(o.Seed), o.Width, o.Chances), rule, nil
}

func (o *colliderOptions) Run(w io.Writer) error {
	if err := o.validate(); err != nil {
		return errgo.Mask(err)
	}
	start, rule, err := o.setup()
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	logger.Debugf("rule %+v, %d cells, total weight %d", rule, start.Len(), start.TotalWeight())

	show := func(st collider.State) {
		if o.Debug {
			fmt.Fprintln(w, st.Verbose())
			return
		}
		fmt.Fprintln(w, st)
	}
	var pacer *core.FixedStep
	if o.TPS > 0 {
		pacer = core.NewFixedStep(o.TPS)
	}

	st := start
	gen := 0
	for {
		if pacer != nil && gen > 0 {
			pacer.Wait()
		}
		show(st)
		gen++
		if o.Generations > 0 && uint(gen) >= o.Generations {
			break
		}
		next, ok := st.Next(rule)
		if !ok {
			logger.Infof("no more collisions possible after %d generations", gen-1)
			break
		}
		st = next
	}

	// The leading space keeps the state from being read as a flag when
	// pasted back into --state.
	fmt.Fprintf(w, "Initial state:\n' %s'\n", start.Verbose())
	return nil
}
