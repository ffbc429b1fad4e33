package config

import (
	"github.com/dmitrijs2005/heritagewatch/internal/flagx"
	"github.com/dmitrijs2005/heritagewatch/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// Durations accept both strings such as "90m" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddr            string         `json:"endpoint_addr"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	APIKey                  string         `json:"api_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	S3RootUser              string         `json:"s3_root_user"`
	S3RootPassword          string         `json:"s3_root_password"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
}

// parseJson loads values from the file named by -c or -config into config.
// Fields absent from the file keep their current values. If the file cannot
// be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	c := &JsonConfig{}

	ok, err := flagx.LoadJSONConfig(c)
	if err != nil {
		panic(err)
	}
	if !ok {
		return
	}

	setString(&config.EndpointAddr, c.EndpointAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.APIKey, c.APIKey)
	if c.SessionValidityDuration.Duration > 0 {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
