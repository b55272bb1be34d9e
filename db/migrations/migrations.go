// Package migrations embeds the SQL schema migrations applied at
// startup, mirroring the original's diesel_migrations::embed_migrations!
// macro (score_extractor depends on `../orm/migrations/`) but adapted to
// golang-migrate/migrate's iofs source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
