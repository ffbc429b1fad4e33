package config

import (
	"github.com/dmitrijs2005/heritagewatch/internal/flagx"
	"github.com/dmitrijs2005/heritagewatch/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	APIOrigin           string         `json:"api_origin"`
	APIKey              string         `json:"api_key"`
	DatabasePath        string         `json:"database_path"`
	Languages           []string       `json:"languages"`
	PageSize            int            `json:"page_size"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays cfg with the values present in the file given by -c or
// -config. It panics on read or parse errors.
func parseJson(cfg *Config) {
	var jc JsonConfig

	ok, err := flagx.LoadJSONConfig(&jc)
	if err != nil {
		panic(err)
	}
	if !ok {
		return
	}

	if jc.APIOrigin != "" {
		cfg.APIOrigin = jc.APIOrigin
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if len(jc.Languages) > 0 {
		cfg.Languages = jc.Languages
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}
