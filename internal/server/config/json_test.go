package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_grpc":              "www.example:9000",
		"database_dsn":                    "postgres://json",
		"secret_key":                      "my_secret_key",
		"access_token_validity_duration":  "1m",
		"refresh_token_validity_duration": 180000000000,
		"s3_materials_bucket":             "materials",
		"presign_validity_duration":       "30s",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 1*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, 3*time.Minute, cfg.RefreshTokenValidityDuration)
		assert.Equal(t, "materials", cfg.S3MaterialsBucket)
		assert.Equal(t, 30*time.Second, cfg.PresignValidityDuration)
		// absent keys keep defaults
		assert.Equal(t, "profile-pictures", cfg.S3PicturesBucket)
		assert.Equal(t, "us-east-1", cfg.S3Region)
	})

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrGRPC: "defaults:1234", AccessTokenValidityDuration: 2 * time.Minute}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, 2*time.Minute, cfg.AccessTokenValidityDuration)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
