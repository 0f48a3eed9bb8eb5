package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/teachloop/internal/flagx"
	"github.com/dmitrijs2005/teachloop/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// use timex.Duration so both "15m" and integer nanoseconds are accepted.
// Empty fields in the file keep the value already present in Config.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	S3MaterialsBucket            string         `json:"s3_materials_bucket"`
	S3PicturesBucket             string         `json:"s3_pictures_bucket"`
	PresignValidityDuration      timex.Duration `json:"presign_validity_duration"`
	OTLPEndpoint                 string         `json:"otlp_endpoint"`
}

// parseJson loads the file named by -c/-config into config.
// Nothing happens when no file is given; unreadable or invalid files panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3MaterialsBucket, c.S3MaterialsBucket)
	setString(&config.S3PicturesBucket, c.S3PicturesBucket)
	setString(&config.OTLPEndpoint, c.OTLPEndpoint)

	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration > 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.PresignValidityDuration.Duration > 0 {
		config.PresignValidityDuration = c.PresignValidityDuration.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
