package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays TEACHLOOP_* environment variables on config.
// Unset variables leave the current value in place. Malformed values panic,
// like the other loaders.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
