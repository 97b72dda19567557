package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/serroba/link-shortener/internal/shortener"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	sqliteInsertLink = `INSERT INTO urls (short_id, original_url) VALUES (?, ?)`
	sqliteSelectLink = `SELECT short_id, original_url FROM urls WHERE short_id = ?`

	// busy_timeout makes concurrent writers wait on the database lock instead of failing.
	sqliteDSNFormat = "file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
)

// SQLiteStore is a file-backed SQLite implementation of shortener.Repository.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database file at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf(sqliteDSNFormat, path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	return &SQLiteStore{db: db}, nil
}

// EnsureSchema creates the urls table if it does not exist.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, createLinksTable)

	return err
}

func (s *SQLiteStore) Insert(ctx context.Context, link shortener.Link) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, sqliteInsertLink, string(link.ShortID), link.OriginalURL)
	if err != nil {
		if isSQLiteConstraintViolation(err) {
			return shortener.ErrDuplicateKey
		}

		return err
	}

	return nil
}

func (s *SQLiteStore) Lookup(ctx context.Context, id shortener.ShortID) (shortener.Link, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return shortener.Link{}, err
	}
	defer conn.Close()

	var (
		shortID     string
		originalURL string
	)

	err = conn.QueryRowContext(ctx, sqliteSelectLink, string(id)).Scan(&shortID, &originalURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shortener.Link{}, shortener.ErrNotFound
		}

		return shortener.Link{}, err
	}

	return shortener.Link{ShortID: shortener.ShortID(shortID), OriginalURL: originalURL}, nil
}

// Ping checks the database file is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Shutdown closes the database.
func (s *SQLiteStore) Shutdown() error {
	return s.db.Close()
}

func isSQLiteConstraintViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	code := sqliteErr.Code()

	return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

var (
	_ shortener.Repository         = (*SQLiteStore)(nil)
	_ shortener.SchemaBootstrapper = (*SQLiteStore)(nil)
)
