package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"collider/internal/core"
	"collider/internal/sims/collider"
)

var runTests = []struct {
	testName   string
	args       []string
	expectCode int
	expectOut  string
}{{
	testName:   "collider-to-fixpoint",
	args:       []string{"collider", "--state", "+5 _ _ -5"},
	expectCode: 0,
	expectOut:  "|>__<|\n|_><_|\n|____|\nInitial state:\n' +5 _ _ -5 '\n",
}, {
	testName:   "collider-debug-limited",
	args:       []string{"collider", "-s", "+5 _ _ -5", "-g", "2", "--debug"},
	expectCode: 0,
	expectOut:  "+5 _ _ -5 \n_ +5 -5 _ \nInitial state:\n' +5 _ _ -5 '\n",
}, {
	testName:   "collider-bounce",
	args:       []string{"collider", "-b", "-s", " -5 _ _"},
	expectCode: 0,
	expectOut:  "|<__|\n|>__|\nInitial state:\n' -5 _ _ '\n",
}, {
	testName:   "collider-single-cell-bounce-stops",
	args:       []string{"collider", "-b", "-s", "+5"},
	expectCode: 0,
	expectOut:  "|>|\nInitial state:\n' +5 '\n",
}, {
	testName:   "collider-damage",
	args:       []string{"collider", "--damage", "--state", " -3 -7 2", "--debug"},
	expectCode: 0,
	expectOut:  "-3 -7 2 \n-4 _ 2 \n4 _ 2 \nInitial state:\n' -3 -7 2 '\n",
}, {
	testName:   "collider-without-source",
	args:       []string{"collider"},
	expectCode: 1,
}, {
	testName:   "collider-two-sources",
	args:       []string{"collider", "-r", "-s", "1"},
	expectCode: 1,
}, {
	testName:   "collider-bad-state",
	args:       []string{"collider", "-s", "+5 100"},
	expectCode: 1,
}, {
	testName:   "collider-bad-chance",
	args:       []string{"collider", "-r", "--rand-left", "100"},
	expectCode: 1,
}, {
	testName:   "simple",
	args:       []string{"simple", "-r", "90", "-s", "   X   ", "-g", "2"},
	expectCode: 0,
	expectOut:  "|   X   |\n|  X X  |\n",
}, {
	testName:   "simple-zero-generations",
	args:       []string{"simple", "--rule", "90", "--state", "X", "-g", "0"},
	expectCode: 0,
	expectOut:  "X  \n",
}, {
	testName:   "simple-bad-rule",
	args:       []string{"simple", "-r", "256"},
	expectCode: 1,
}, {
	testName:   "unknown-command",
	args:       []string{"wolfram"},
	expectCode: 2,
}, {
	testName:   "unknown-flag",
	args:       []string{"collider", "--nope"},
	expectCode: 2,
}, {
	testName:   "no-command",
	args:       nil,
	expectCode: 2,
}}

func TestRun(t *testing.T) {
	c := qt.New(t)
	for _, test := range runTests {
		c.Run(test.testName, func(c *qt.C) {
			var stdout, stderr bytes.Buffer
			code := run(test.args, &stdout, &stderr)
			c.Assert(code, qt.Equals, test.expectCode, qt.Commentf("stderr: %s", stderr.String()))
			if test.expectCode == 0 {
				c.Assert(stdout.String(), qt.Equals, test.expectOut)
			}
		})
	}
}

func TestRunRandom(t *testing.T) {
	c := qt.New(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"collider", "-r", "--rand-width", "10", "--seed", "3", "-g", "1", "--debug"}, &stdout, &stderr)
	c.Assert(code, qt.Equals, 0)

	st := collider.Random(core.NewRNG(3), 10, collider.DefaultChances())
	c.Assert(stdout.String(), qt.Equals, st.Verbose()+"\nInitial state:\n' "+st.Verbose()+"'\n")
}

func TestRunEnvironmentDefaults(t *testing.T) {
	c := qt.New(t)
	c.Setenv("COLLIDER_BOUNCE", "true")
	var stdout, stderr bytes.Buffer
	code := run([]string{"collider", "-s", " -5 _ _", "-g", "2"}, &stdout, &stderr)
	c.Assert(code, qt.Equals, 0)
	c.Assert(stdout.String(), qt.Equals, "|<__|\n|>__|\nInitial state:\n' -5 _ _ '\n")
}

func TestRunScenario(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.TempDir(), "scenarios.yaml")
	err := os.WriteFile(path, []byte(`
scenarios:
  - name: bounce
    state: "_ -4"
    bounce: true
    generations: 3
`), 0o644)
	c.Assert(err, qt.IsNil)

	var stdout, stderr bytes.Buffer
	code := run([]string{"collider", "--scenario", path, "--name", "bounce"}, &stdout, &stderr)
	c.Assert(code, qt.Equals, 0)
	c.Assert(stdout.String(), qt.Equals, "|_<|\n|<_|\n|>_|\nInitial state:\n' _ -4 '\n")

	code = run([]string{"collider", "--scenario", path, "--name", "missing"}, &stdout, &stderr)
	c.Assert(code, qt.Equals, 1)
	code = run([]string{"collider", "--scenario", path}, &stdout, &stderr)
	c.Assert(code, qt.Equals, 1)
}
