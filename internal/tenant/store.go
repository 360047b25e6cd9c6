package tenant

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads client records from the Postgres clients table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore opens a bounded connection pool against the given DSN.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	return &Store{pool: pool}, nil
}

// NewStoreFromPool wraps an existing pool. The caller retains ownership.
func NewStoreFromPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() {
	s.pool.Close()
}

// List returns all clients ordered by name. The ORDER BY makes the
// "first record" default-selection deterministic.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	query := `SELECT id, name, site_url, username, app_password,
                     COALESCE(wc_consumer_key, ''), COALESCE(wc_consumer_secret, ''),
                     COALESCE(status, '')
              FROM clients
              ORDER BY name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.BaseURL, &r.Username, &r.AppPassword,
			&r.WCKey, &r.WCSecret, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		r.Source = SourceDatabase
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read client rows: %w", err)
	}
	return records, nil
}
