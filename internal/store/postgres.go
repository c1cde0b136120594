// Package store persists factor runs to Postgres. A run records the
// evaluated universe; values are stored long-format, one row per
// (factor, date, symbol), with missing cells as SQL NULL.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"alphapanel/internal/alpha"
	"alphapanel/internal/panel"
)

const defaultTimeout = 30 * time.Second

const schema = `
CREATE TABLE IF NOT EXISTS factor_runs (
	run_id     UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL,
	factors    INTEGER NOT NULL,
	dates      INTEGER NOT NULL,
	symbols    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS factor_values (
	run_id UUID NOT NULL REFERENCES factor_runs(run_id) ON DELETE CASCADE,
	factor TEXT NOT NULL,
	date   DATE NOT NULL,
	symbol TEXT NOT NULL,
	value  DOUBLE PRECISION,
	PRIMARY KEY (run_id, factor, date, symbol)
);`

// Store wraps a Postgres connection for factor persistence.
type Store struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// Open connects and ensures the schema exists.
func Open(dsn string, logger zerolog.Logger) (*Store, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }

// SaveRun inserts a run header plus every factor matrix, batched per
// factor inside one transaction. It returns the new run ID.
func (s *Store) SaveRun(ctx context.Context, axes *panel.Axes, results map[alpha.FactorID]*panel.Matrix) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	runID := uuid.New()
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO factor_runs (run_id, created_at, factors, dates, symbols) VALUES ($1, $2, $3, $4, $5)`,
		runID, time.Now().UTC(), len(results), axes.NumDates(), axes.NumSymbols())
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: insert run: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx,
		`INSERT INTO factor_values (run_id, factor, date, symbol, value) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: prepare values: %w", err)
	}
	defer stmt.Close()

	for id, m := range results {
		if err := insertMatrix(ctx, stmt, runID, id, m); err != nil {
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("store: commit: %w", err)
	}
	s.logger.Info().
		Str("run_id", runID.String()).
		Int("factors", len(results)).
		Msg("persisted factor run")
	return runID, nil
}

func insertMatrix(ctx context.Context, stmt *sqlx.Stmt, runID uuid.UUID, id alpha.FactorID, m *panel.Matrix) error {
	axes := m.Axes()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v := sql.NullFloat64{Float64: m.At(i, j)}
			v.Valid = !math.IsNaN(v.Float64) && !math.IsInf(v.Float64, 0)
			if _, err := stmt.ExecContext(ctx, runID, string(id), axes.Date(i), axes.Symbol(j), v); err != nil {
				return fmt.Errorf("store: insert %s value: %w", id, err)
			}
		}
	}
	return nil
}

// RunSummary is one persisted run header.
type RunSummary struct {
	RunID     uuid.UUID `db:"run_id"`
	CreatedAt time.Time `db:"created_at"`
	Factors   int       `db:"factors"`
	Dates     int       `db:"dates"`
	Symbols   int       `db:"symbols"`
}

// ListRuns returns run headers, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var out []RunSummary
	err := s.db.SelectContext(ctx, &out,
		`SELECT run_id, created_at, factors, dates, symbols FROM factor_runs ORDER BY created_at DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	return out, nil
}
