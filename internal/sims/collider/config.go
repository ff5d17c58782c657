package collider

import "strconv"

// Config controls the collider workbench simulation. Fields tagged env can be
// filled from the environment with config.ParseEnv.
type Config struct {
	Width  int   `env:"COLLIDER_WIDTH"`
	Height int   `env:"COLLIDER_HEIGHT"`
	Seed   int64 `env:"COLLIDER_SEED"`

	Bounce bool `env:"COLLIDER_BOUNCE"`
	Damage bool `env:"COLLIDER_DAMAGE"`

	Chances Chances `envPrefix:"COLLIDER_CHANCE_"`
}

// Rule returns the collision rule selected by the config.
func (c Config) Rule() Rule {
	return Rule{Bounce: c.Bounce, PartialDestroy: c.Damage}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   80,
		Height:  200,
		Seed:    1337,
		Chances: DefaultChances(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["bounce"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Bounce = parsed
		}
	}
	if v, ok := cfg["damage"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Damage = parsed
		}
	}
	chance := func(key string, dst *uint) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseUint(v, 10, 8); err == nil && parsed < 100 {
				*dst = uint(parsed)
			}
		}
	}
	chance("stationary", &c.Chances.Stationary)
	chance("left", &c.Chances.Left)
	chance("right", &c.Chances.Right)
	chance("empty", &c.Chances.Empty)
	return c
}
