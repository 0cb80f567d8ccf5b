// Package sqlite backs the key-value port with a SQLite file through the
// cgo-free modernc.org/sqlite driver. Each persisted collection is one row
// of the records table, replaced whole on every save.
//
// The schema comes from numbered migrations in migrations/. NewStore
// applies the ones newer than the highest version in schema_migrations,
// each inside its own transaction.
//
// The default location is ~/.hrcentral/data/records.db, opened in WAL mode
// with a busy timeout so the CLI and a running MCP server can share it.
package sqlite
