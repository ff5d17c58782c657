package config

import (
	"github.com/caarlos0/env/v11"
	"gopkg.in/errgo.v1"
)

// ParseEnv loads configuration from environment variables. Fields whose
// variables are unset keep their current values.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errgo.Notef(err, "parse env")
	}
	return nil
}
