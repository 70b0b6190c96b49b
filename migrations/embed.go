package migrations

import "embed"

// FS holds the goose migrations, applied by postgres.Migrate.
//
//go:embed *.sql
var FS embed.FS
