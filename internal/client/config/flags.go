package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags listed here are parsed; everything else in os.Args is left
// to other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-i", "-t", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "local database file")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	callTimeout := fs.Int("t", int(cfg.CallTimeout.Seconds()), "call timeout (in seconds)")
	fs.StringVar(&cfg.OTLPEndpoint, "o", cfg.OTLPEndpoint, "OTLP/HTTP endpoint for traces")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.CallTimeout = time.Duration(*callTimeout) * time.Second
}
