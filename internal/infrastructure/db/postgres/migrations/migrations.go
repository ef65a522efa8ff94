// Package migrations embeds the goose SQL migrations applied once at
// startup, before the HTTP server accepts requests.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
