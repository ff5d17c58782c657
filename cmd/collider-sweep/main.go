// Command collider-sweep measures how long random fields take to settle under
// each collision rule.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"collider/internal/config"
	"collider/internal/core"
	"collider/internal/sims/collider"
)

var logger = loggo.GetLogger("collider.sweep")

type scenario struct {
	rule collider.Rule
	seed int64
}

type scenarioResult struct {
	scenario
	generations   int
	settled       bool
	initialWeight int
	finalWeight   int
	survivors     int
}

type ruleSummary struct {
	rule           collider.Rule
	runs           int
	settled        int
	totalGens      int
	maxGens        int
	totalSurvivors int
	totalKept      float64
}

func (s ruleSummary) String() string {
	meanGens, meanSurvivors, meanKept := 0.0, 0.0, 0.0
	if s.runs > 0 {
		meanGens = float64(s.totalGens) / float64(s.runs)
		meanSurvivors = float64(s.totalSurvivors) / float64(s.runs)
		meanKept = s.totalKept / float64(s.runs)
	}
	return fmt.Sprintf("bounce=%-5t damage=%-5t settled=%d/%d gens(mean=%.1f max=%d) survivors=%.1f weight kept=%.1f%%",
		s.rule.Bounce, s.rule.PartialDestroy, s.settled, s.runs, meanGens, s.maxGens, meanSurvivors, 100*meanKept)
}

type sweepConfig struct {
	Width          int   `env:"COLLIDER_WIDTH"`
	Seed           int64 `env:"COLLIDER_SEED"`
	Runs           int
	Workers        int
	MaxGenerations int
	Chances        collider.Chances `envPrefix:"COLLIDER_CHANCE_"`
	Log            string           `env:"COLLIDER_LOG" envDefault:"<root>=INFO"`
}

func main() {
	cfg := sweepConfig{
		Width:          80,
		Seed:           1,
		Runs:           200,
		Workers:        runtime.NumCPU(),
		MaxGenerations: 10000,
		Chances:        collider.DefaultChances(),
	}
	if err := config.ParseEnv(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fs := gnuflag.NewFlagSet("collider-sweep", gnuflag.ExitOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "field width in cells")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the first run; run i uses seed+i")
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "random fields per rule")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of worker goroutines")
	fs.IntVar(&cfg.MaxGenerations, "max-generations", cfg.MaxGenerations, "give up on a run after this many generations")
	fs.UintVar(&cfg.Chances.Stationary, "rand-stationary", cfg.Chances.Stationary, "weighted chance of a stationary object")
	fs.UintVar(&cfg.Chances.Left, "rand-left", cfg.Chances.Left, "weighted chance of a left-moving object")
	fs.UintVar(&cfg.Chances.Right, "rand-right", cfg.Chances.Right, "weighted chance of a right-moving object")
	fs.UintVar(&cfg.Chances.Empty, "rand-empty", cfg.Chances.Empty, "weighted chance of an empty cell")
	fs.StringVar(&cfg.Log, "log", cfg.Log, "logging configuration")
	fs.Parse(true, os.Args[1:])

	if err := loggo.ConfigureLoggers(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log configuration: %v\n", err)
		os.Exit(2)
	}
	if cfg.Width <= 0 || cfg.Runs <= 0 || cfg.Workers <= 0 {
		logger.Errorf("width, runs and workers must be positive")
		os.Exit(2)
	}
	report(os.Stdout, cfg, sweep(cfg))
}

var rules = []collider.Rule{
	{},
	{Bounce: true},
	{PartialDestroy: true},
	{Bounce: true, PartialDestroy: true},
}

// sweep runs every rule against cfg.Runs random fields on a pool of workers.
// Each worker owns the simulations it runs.
func sweep(cfg sweepConfig) []ruleSummary {
	logger.Infof("sweeping %d fields per rule (%d workers, width %d)", cfg.Runs, cfg.Workers, cfg.Width)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(cfg, sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, rule := range rules {
			for i := 0; i < cfg.Runs; i++ {
				jobs <- scenario{rule: rule, seed: cfg.Seed + int64(i)}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	summaries := make([]ruleSummary, len(rules))
	for i, rule := range rules {
		summaries[i].rule = rule
	}
	for res := range results {
		for i := range summaries {
			if summaries[i].rule == res.rule {
				summaries[i].add(res)
			}
		}
		if !res.settled {
			logger.Warningf("seed %d with %+v did not settle within %d generations", res.seed, res.rule, cfg.MaxGenerations)
		}
	}
	logger.Infof("sweep finished in %s", time.Since(start).Round(time.Millisecond))
	return summaries
}

func (s *ruleSummary) add(res scenarioResult) {
	s.runs++
	if res.settled {
		s.settled++
	}
	s.totalGens += res.generations
	s.maxGens = max(s.maxGens, res.generations)
	s.totalSurvivors += res.survivors
	if res.initialWeight > 0 {
		s.totalKept += float64(res.finalWeight) / float64(res.initialWeight)
	}
}

func runScenario(cfg sweepConfig, sc scenario) scenarioResult {
	st := collider.Random(core.NewRNG(sc.seed), cfg.Width, cfg.Chances)
	res := scenarioResult{scenario: sc, initialWeight: st.TotalWeight()}
	for res.generations < cfg.MaxGenerations {
		next, ok := st.Next(sc.rule)
		if !ok {
			res.settled = true
			break
		}
		st = next
		res.generations++
	}
	res.finalWeight = st.TotalWeight()
	res.survivors = st.Particles()
	return res
}

func report(w io.Writer, cfg sweepConfig, summaries []ruleSummary) {
	fmt.Fprintf(w, "%d random fields of width %d per rule, seeds %d-%d\n",
		cfg.Runs, cfg.Width, cfg.Seed, cfg.Seed+int64(cfg.Runs)-1)
	for _, s := range summaries {
		fmt.Fprintln(w, s)
	}
}
