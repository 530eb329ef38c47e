// Package store keeps a SQLite catalog of word list files.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/wordlehelp/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the word list catalog.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS wordlists (
			path TEXT PRIMARY KEY,
			lang TEXT NOT NULL,
			source TEXT NOT NULL,
			words INTEGER NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_wordlists_lang ON wordlists(lang);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordWordList inserts or replaces the catalog entry for info.Path.
func (s *Store) RecordWordList(ctx context.Context, info model.WordListInfo) error {
	updatedAt := info.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wordlists (path, lang, source, words, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			lang = excluded.lang,
			source = excluded.source,
			words = excluded.words,
			updated_at = excluded.updated_at`,
		info.Path,
		info.Lang,
		info.Source,
		info.Words,
		updatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// ListWordLists returns every catalog entry ordered by language and path.
func (s *Store) ListWordLists(ctx context.Context) ([]model.WordListInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, lang, source, words, updated_at
		 FROM wordlists
		 ORDER BY lang ASC, path ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.WordListInfo
	for rows.Next() {
		var info model.WordListInfo
		var updatedAt string
		if err := rows.Scan(&info.Path, &info.Lang, &info.Source, &info.Words, &updatedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, updatedAt)
		if err != nil {
			return nil, err
		}
		info.UpdatedAt = parsed
		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveWordList deletes the catalog entry for path.
func (s *Store) RemoveWordList(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM wordlists WHERE path = ?`, path)
	return err
}
