package storage

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

var (
	// ErrNotFound is returned when a requested document doesn't exist
	ErrNotFound = errors.New("not found")
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance and applies
// migrations.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SaveDocument inserts or replaces the document for (ecosystem, name, version)
func (s *SQLiteStorage) SaveDocument(ctx context.Context, doc *Document) error {
	if doc.Name == "" {
		return types.ErrEmptyPackageName
	}

	doc.ContentHash = sha256.Sum256([]byte(doc.Content))
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now()
	}

	query := `
		INSERT INTO documents (ecosystem, name, version, content, content_hash, description, homepage, license, origin, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ecosystem, name, version) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			description = excluded.description,
			homepage = excluded.homepage,
			license = excluded.license,
			origin = excluded.origin,
			fetched_at = excluded.fetched_at
	`
	result, err := s.db.ExecContext(ctx, query,
		string(doc.Ecosystem), doc.Name, doc.Version, doc.Content, doc.ContentHash[:],
		doc.Description, doc.Homepage, doc.License, doc.Origin, doc.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil && id > 0 {
		doc.ID = id
	}
	return nil
}

// GetDocument returns the stored document, or ErrNotFound
func (s *SQLiteStorage) GetDocument(ctx context.Context, ecosystem types.Ecosystem, name, version string) (*Document, error) {
	query := `
		SELECT id, ecosystem, name, version, content, content_hash, description, homepage, license, origin, fetched_at
		FROM documents
		WHERE ecosystem = ? AND name = ? AND version = ?
	`
	row := s.db.QueryRowContext(ctx, query, string(ecosystem), name, version)

	var doc Document
	var eco string
	var hash []byte
	err := row.Scan(&doc.ID, &eco, &doc.Name, &doc.Version, &doc.Content, &hash,
		&doc.Description, &doc.Homepage, &doc.License, &doc.Origin, &doc.FetchedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	doc.Ecosystem = types.Ecosystem(eco)
	copy(doc.ContentHash[:], hash)
	return &doc, nil
}

// DeleteStale removes documents fetched before cutoff
func (s *SQLiteStorage) DeleteStale(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale documents: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Stats returns store statistics
func (s *SQLiteStorage) Stats(ctx context.Context) (*StoreStats, error) {
	stats := &StoreStats{Ecosystems: make(map[string]int64)}

	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*), COALESCE(SUM(LENGTH(content)), 0) FROM documents").
		Scan(&stats.Documents, &stats.SizeBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT ecosystem, COUNT(*) FROM documents GROUP BY ecosystem")
	if err != nil {
		return nil, fmt.Errorf("failed to count ecosystems: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var eco string
		var count int64
		if err := rows.Scan(&eco, &count); err != nil {
			return nil, err
		}
		stats.Ecosystems[eco] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var oldest sql.NullTime
	if err := s.db.QueryRowContext(ctx, "SELECT MIN(fetched_at) FROM documents").Scan(&oldest); err == nil && oldest.Valid {
		stats.OldestFetch = oldest.Time
	}

	return stats, nil
}
