// Package migrations embeds the goose SQL migrations for the local
// database: the settings key-value table plus the seeded enquiry and
// follow-up tables.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
