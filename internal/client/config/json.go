package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/teachloop/internal/flagx"
	"github.com/dmitrijs2005/teachloop/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	DatabasePath        string         `json:"database_path"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	CallTimeout         timex.Duration `json:"call_timeout"`
	OTLPEndpoint        string         `json:"otlp_endpoint"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Missing fields keep their current value; read or decode errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = jc.OTLPEndpoint
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.CallTimeout.Duration > 0 {
		cfg.CallTimeout = jc.CallTimeout.Duration
	}
}
