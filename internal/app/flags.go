package app

import (
	"strings"

	"github.com/juju/gnuflag"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string `env:"CA_SIM"`
	Scale int    `env:"CA_SCALE"`
	TPS   int    `env:"CA_TPS"`
	Seed  int64  `env:"CA_SEED"`
	Set   kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "collider", Scale: 3, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *gnuflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Var(&c.Set, "set", "simulation option in key=value form (repeatable), e.g. bounce=true")
}

// Options returns the --set pairs as the map handed to a sim factory.
// Malformed pairs are skipped.
func (c *Config) Options() map[string]string {
	opts := make(map[string]string, len(c.Set))
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		opts[key] = value
	}
	return opts
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
