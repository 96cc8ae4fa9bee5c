package usage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the ledger record as a single row. Updates go
// through an upsert so two processes sharing the table cannot lose an
// increment the way the file store can.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and ensures the ledger table
// exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureTable(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS ai_usage (
		     id          INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		     amount_used DOUBLE PRECISION NOT NULL DEFAULT 0,
		     period      INT NOT NULL,
		     updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		 )`)
	if err != nil {
		return fmt.Errorf("failed to create ai_usage table: %w", err)
	}
	return nil
}

// Load reads the singleton ledger row.
func (s *PostgresStore) Load(ctx context.Context) (Record, bool, error) {
	var rec Record
	err := s.pool.QueryRow(ctx,
		`SELECT amount_used, period FROM ai_usage WHERE id = 1`,
	).Scan(&rec.AmountUsed, &rec.Period)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to load usage row: %w", err)
	}
	return rec, true, nil
}

// Save upserts the singleton ledger row.
func (s *PostgresStore) Save(ctx context.Context, rec Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO ai_usage (id, amount_used, period, updated_at)
		 VALUES (1, $1, $2, NOW())
		 ON CONFLICT (id) DO UPDATE
		 SET amount_used = EXCLUDED.amount_used,
		     period = EXCLUDED.period,
		     updated_at = NOW()`,
		rec.AmountUsed, rec.Period,
	)
	if err != nil {
		return fmt.Errorf("failed to save usage row: %w", err)
	}
	return nil
}

// Add atomically increments the counter for the given period, resetting it
// first when the stored period is stale. Works in one statement so
// concurrent processes cannot interleave a read-modify-write.
func (s *PostgresStore) Add(ctx context.Context, delta float64, period int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO ai_usage (id, amount_used, period, updated_at)
		 VALUES (1, $1, $2, NOW())
		 ON CONFLICT (id) DO UPDATE
		 SET amount_used = CASE
		         WHEN ai_usage.period = EXCLUDED.period THEN ai_usage.amount_used + $1
		         ELSE $1
		     END,
		     period = EXCLUDED.period,
		     updated_at = NOW()`,
		delta, period,
	)
	if err != nil {
		return fmt.Errorf("failed to increment usage row: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
