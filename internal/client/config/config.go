// Package config loads runtime configuration for the TeachLoop CLI.
//
// Sources, later ones taking precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. TEACHLOOP_* environment variables.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-f string   path of the local sqlite database
//	-i int      online status check interval (seconds)
//	-t int      per-call timeout (seconds)
//	-o string   OTLP/HTTP endpoint for traces
//
// The JSON loader uses timex.Duration, so intervals are strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "teachloop.db",
//	  "online_check_interval": "3s",
//	  "call_timeout": "10s"
//	}
package config

import "time"

// Config holds runtime settings for the TeachLoop CLI.
type Config struct {
	ServerEndpointAddr  string        `env:"TEACHLOOP_SERVER_ADDR"`
	DatabasePath        string        `env:"TEACHLOOP_CLIENT_DB"`
	OnlineCheckInterval time.Duration `env:"TEACHLOOP_ONLINE_CHECK_INTERVAL"`
	CallTimeout         time.Duration `env:"TEACHLOOP_CALL_TIMEOUT"`
	OTLPEndpoint        string        `env:"TEACHLOOP_OTEL_ENDPOINT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "teachloop.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.CallTimeout = 10 * time.Second
	c.OTLPEndpoint = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
