// Package migrations holds the numbered schema files of the SQLite store.
// The migrator records applied versions itself, so files contain schema
// statements only.
package migrations

import "embed"

//go:embed *.up.sql *.down.sql
var FS embed.FS
