// Package postgres embeds goose migrations for the postgres key-value backend.
package postgres

import "embed"

//go:embed *.sql
var Migrations embed.FS
