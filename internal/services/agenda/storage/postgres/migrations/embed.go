package migrations

import "embed"

// FS contains embedded PostgreSQL migrations for agenda storage.
//
//go:embed *.sql
var FS embed.FS
