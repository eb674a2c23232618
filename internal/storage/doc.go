// Package storage persists fetched documentation in SQLite so repeated
// lookups across server runs do not refetch registry content.
//
// The store is a single table keyed by (ecosystem, name, version). Writes
// upsert; reads return ErrNotFound for missing documents. Staleness is the
// caller's policy: the docs service treats documents older than its
// configured TTL as misses, and DeleteStale prunes them.
//
// Two SQLite drivers are supported behind build tags: modernc.org/sqlite
// (pure Go, the default) and github.com/mattn/go-sqlite3 (cgo_sqlite tag).
// See build_purego.go and build_cgo.go.
package storage
