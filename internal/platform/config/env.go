// Package config loads command configuration from the environment.
// Commands declare their settings as structs with `env` tags; flags layer
// on top of the parsed values at the call site.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target's env-tagged fields from environment variables,
// applying envDefault values for anything unset.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
