package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays TEACHLOOP_* variables; unset ones keep the current value.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
