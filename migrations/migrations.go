// Package migrations embeds the SQL schema migrations applied at
// startup when the service runs against a direct Postgres connection.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
