package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed below are taken from os.Args (see flagx.FilterArgs), so the JSON
// loader's -c/-config do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-d", "-l", "-p", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIOrigin, "a", cfg.APIOrigin, "origin of the remote service")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	languages := fs.String("l", strings.Join(cfg.Languages, ","), "preferred languages (comma-separated tags)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "photo feed page size")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Languages = splitList(*languages)
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
