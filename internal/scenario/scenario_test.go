package scenario

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"gopkg.in/errgo.v1"

	"collider/internal/sims/collider"
)

const sample = `
scenarios:
  - name: head-on
    state: "+5 _ _ -5"
    generations: 4
  - name: bouncing
    state: "-3 _ _"
    bounce: true
    damage: true
`

func TestParse(t *testing.T) {
	c := qt.New(t)
	f, err := Parse([]byte(sample))
	c.Assert(err, qt.IsNil)
	c.Assert(f.Scenarios, qt.HasLen, 2)

	sc, err := f.Find("bouncing")
	c.Assert(err, qt.IsNil)
	c.Assert(sc.Rule(), qt.Equals, collider.Rule{Bounce: true, PartialDestroy: true})
	c.Assert(sc.Initial().Verbose(), qt.Equals, "-3 _ _ ")

	sc, err = f.Find("head-on")
	c.Assert(err, qt.IsNil)
	c.Assert(sc.Generations, qt.Equals, uint(4))
	c.Assert(sc.Rule(), qt.Equals, collider.Rule{})
	c.Assert(sc.Initial().String(), qt.Equals, "|>__<|")
}

func TestFindMissing(t *testing.T) {
	c := qt.New(t)
	f, err := Parse([]byte(sample))
	c.Assert(err, qt.IsNil)
	_, err = f.Find("nope")
	c.Assert(err, qt.ErrorMatches, `scenario "nope" not found`)
	c.Assert(errgo.Cause(err), qt.Equals, ErrNotFound)
}

var parseErrorTests = []struct {
	testName    string
	data        string
	expectError string
	expectCause error
}{{
	testName:    "bad-yaml",
	data:        "scenarios: [",
	expectError: `cannot decode scenarios: .*`,
}, {
	testName: "missing-name",
	data: `
scenarios:
  - state: "1 2"
`,
	expectError: `scenario 0 has no name`,
}, {
	testName: "duplicate-name",
	data: `
scenarios:
  - name: a
    state: "1"
  - name: a
    state: "2"
`,
	expectError: `duplicate scenario "a"`,
}, {
	testName: "bad-state",
	data: `
scenarios:
  - name: broken
    state: "+5 100"
`,
	expectError: `scenario broken: cell 1 \("100"\): value must be between 0 and 99`,
	expectCause: collider.ErrMalformedCell,
}, {
	testName: "empty-state",
	data: `
scenarios:
  - name: blank
    state: "  "
`,
	expectError: `scenario "blank" has an empty state`,
}}

func TestParseErrors(t *testing.T) {
	c := qt.New(t)
	for _, test := range parseErrorTests {
		c.Run(test.testName, func(c *qt.C) {
			_, err := Parse([]byte(test.data))
			c.Assert(err, qt.ErrorMatches, test.expectError)
			if test.expectCause != nil {
				c.Assert(errgo.Cause(err), qt.Equals, test.expectCause)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	err := os.WriteFile(path, []byte(sample), 0o644)
	c.Assert(err, qt.IsNil)

	f, err := Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(f.Scenarios, qt.HasLen, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	c.Assert(os.IsNotExist(errgo.Cause(err)), qt.IsTrue)
}
