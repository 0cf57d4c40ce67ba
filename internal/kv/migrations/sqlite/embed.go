// Package sqlite embeds goose migrations for the sqlite key-value backend.
package sqlite

import "embed"

//go:embed *.sql
var Migrations embed.FS
