package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/link-shortener/internal/shortener"
)

// SQLSTATE unique_violation.
const pgUniqueViolation = "23505"

// PostgresStore is a PostgreSQL implementation of shortener.Repository.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed link store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the urls table if it does not exist.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, createLinksTable)

	return err
}

func (p *PostgresStore) Insert(ctx context.Context, link shortener.Link) error {
	query := `
		INSERT INTO urls (short_id, original_url)
		VALUES ($1, $2)
	`

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, query, string(link.ShortID), link.OriginalURL)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return shortener.ErrDuplicateKey
		}

		return err
	}

	return nil
}

func (p *PostgresStore) Lookup(ctx context.Context, id shortener.ShortID) (shortener.Link, error) {
	query := `
		SELECT short_id, original_url
		FROM urls
		WHERE short_id = $1
	`

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return shortener.Link{}, err
	}
	defer conn.Release()

	var link shortener.Link

	err = conn.QueryRow(ctx, query, string(id)).Scan(&link.ShortID, &link.OriginalURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shortener.Link{}, shortener.ErrNotFound
		}

		return shortener.Link{}, err
	}

	return link, nil
}

// Ping checks PostgreSQL connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Shutdown closes the connection pool.
func (p *PostgresStore) Shutdown() error {
	p.pool.Close()

	return nil
}

var (
	_ shortener.Repository         = (*PostgresStore)(nil)
	_ shortener.SchemaBootstrapper = (*PostgresStore)(nil)
)
