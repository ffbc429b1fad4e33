// Package config loads runtime configuration for the HeritageWatch client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config. Comments and trailing
//     commas are tolerated.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   origin of the remote service, e.g. https://har.example
//	-k string   API key sent with every request
//	-d string   path of the local SQLite database
//	-l string   comma-separated preferred language tags, e.g. fr-FR,en-US
//	-p int      photo feed page size
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  // remote service
//	  "api_origin": "https://har.example",
//	  "api_key": "...",
//	  "database_path": "heritagewatch.db",
//	  "languages": ["fr-FR", "en-US"],
//	  "page_size": 10,
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s"
//	}
//
// Fields missing from the file keep their previous value.
package config
