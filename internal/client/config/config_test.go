package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "teachloop.db", c.DatabasePath)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.CallTimeout)
	assert.Empty(t, c.OTLPEndpoint)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("TEACHLOOP_SERVER_ADDR", "env:1")
	t.Setenv("TEACHLOOP_CLIENT_DB", "env.db")
	os.Args = []string{"cmd", "-a", "flag:2"}

	cfg := LoadConfig()
	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "env.db", cfg.DatabasePath)
}
