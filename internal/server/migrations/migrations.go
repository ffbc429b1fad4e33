// Package migrations embeds the goose migrations of the report service.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
