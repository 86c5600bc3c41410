// Package migrations embeds the goose schema migrations for both supported
// backends. The repository manager picks the subdirectory matching the
// driver in use.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
