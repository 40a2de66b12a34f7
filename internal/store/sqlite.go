// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/causelist/pkg/types"
)

// DBFile is the SQLite database name inside the results directory.
const DBFile = "causelist.db"

const (
	kindArtifact     = "artifact"
	kindSearchResult = "search_result"
)

// SQLiteStore keeps documents in an embedded SQLite database. Bodies are the
// same indented JSON FileStore writes.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens or creates dir/causelist.db and its schema.
func NewSQLiteStore(dir string) (*SQLiteStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("results directory not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	dbPath := filepath.Join(dir, DBFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			name TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			body TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_kind ON documents(kind)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) location(name string) string {
	return s.dbPath + "#" + name
}

func (s *SQLiteStore) Put(ctx context.Context, name string, a types.CauseListArtifact) (string, error) {
	return s.upsert(ctx, name, kindArtifact, a)
}

func (s *SQLiteStore) PutSearchResult(ctx context.Context, r types.SearchResult) (string, error) {
	return s.upsert(ctx, SearchResultName(r.Query), kindSearchResult, r)
}

func (s *SQLiteStore) upsert(ctx context.Context, name, kind string, v any) (string, error) {
	body, err := encode(v)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (name, kind, body, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			kind=excluded.kind, body=excluded.body, updated_at=excluded.updated_at`,
		name, kind, string(body), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return s.location(name), nil
}

func (s *SQLiteStore) Get(ctx context.Context, name string) (types.CauseListArtifact, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE name = ?`, name,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.CauseListArtifact{}, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return types.CauseListArtifact{}, fmt.Errorf("looking up %s: %w", name, err)
	}
	return decode(name, []byte(body))
}

func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM documents ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Search lower-cases bodies in Go rather than SQL so non-ASCII text folds
// the same way it does for FileStore.
func (s *SQLiteStore) Search(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, body FROM documents ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("searching documents: %w", err)
	}
	defer rows.Close()

	q := strings.ToLower(query)
	var matches []string
	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if containsFold([]byte(body), q) {
			matches = append(matches, name)
		}
	}
	return matches, rows.Err()
}
