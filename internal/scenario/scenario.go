// Package scenario reads named collider setups from YAML files:
//
//	scenarios:
//	  - name: head-on
//	    state: "+5 _ _ -5"
//	    bounce: true
//	    damage: false
//	    generations: 10
package scenario

import (
	"os"

	"gopkg.in/errgo.v1"
	"gopkg.in/yaml.v3"

	"collider/internal/sims/collider"
)

// ErrNotFound is the cause returned by Find for unknown names.
var ErrNotFound = errgo.New("scenario not found")

// Scenario is one named starting field and rule.
type Scenario struct {
	Name        string `yaml:"name"`
	State       string `yaml:"state"`
	Bounce      bool   `yaml:"bounce"`
	Damage      bool   `yaml:"damage"`
	Generations uint   `yaml:"generations"`

	initial collider.State
}

// Rule returns the scenario's collision rule.
func (s Scenario) Rule() collider.Rule {
	return collider.Rule{Bounce: s.Bounce, PartialDestroy: s.Damage}
}

// Initial returns the decoded starting field.
func (s Scenario) Initial() collider.State { return s.initial }

// File is a decoded scenario file.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errgo.Mask(err, os.IsNotExist)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errgo.Notef(err, "%s", path)
	}
	return f, nil
}

// Parse decodes and validates a scenario document. Every state must parse and
// names must be unique and non-empty.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errgo.Notef(err, "cannot decode scenarios")
	}
	seen := make(map[string]bool)
	for i := range f.Scenarios {
		sc := &f.Scenarios[i]
		if sc.Name == "" {
			return nil, errgo.Newf("scenario %d has no name", i)
		}
		if seen[sc.Name] {
			return nil, errgo.Newf("duplicate scenario %q", sc.Name)
		}
		seen[sc.Name] = true
		st, err := collider.Parse(sc.State)
		if err != nil {
			return nil, errgo.NoteMask(err, "scenario "+sc.Name, errgo.Is(collider.ErrMalformedCell))
		}
		if st.Len() == 0 {
			return nil, errgo.Newf("scenario %q has an empty state", sc.Name)
		}
		sc.initial = st
	}
	return &f, nil
}

// Find returns the scenario called name.
func (f *File) Find(name string) (Scenario, error) {
	for _, sc := range f.Scenarios {
		if sc.Name == name {
			return sc, nil
		}
	}
	return Scenario{}, errgo.WithCausef(nil, ErrNotFound, "scenario %q not found", name)
}
