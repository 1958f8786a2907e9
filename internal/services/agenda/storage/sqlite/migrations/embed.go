package migrations

import "embed"

// FS contains embedded SQLite migrations for agenda storage.
//
//go:embed *.sql
var FS embed.FS
