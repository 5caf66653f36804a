// Package postgres implements the snapshot persistence backend on top of a
// PostgreSQL database, accessed through database/sql with the pgx driver.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/wbrmagalhaes/jackut-api/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// snapshotRow is the fixed primary key of the single row holding the state.
// The whole data set is written as one JSONB document; there is never more
// than one live snapshot.
const snapshotRow = 1

// SnapshotStore persists the full application state as a single JSONB row.
type SnapshotStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure SnapshotStore implements store.Snapshotter.
var _ store.Snapshotter = (*SnapshotStore)(nil)

// Open connects to the database, verifies connectivity and runs any pending
// migrations. The returned store owns the connection; call Close on shutdown.
func Open(ctx context.Context, databaseURL string, logger *slog.Logger) (*SnapshotStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "snapshot_store")

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database after ping failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database after dialect failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database after migration failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("snapshot store ready", "max_open_conns", 5)
	return &SnapshotStore{db: db, logger: logger}, nil
}

// Save implements store.Snapshotter.Save by upserting the single snapshot row.
func (s *SnapshotStore) Save(ctx context.Context, snap *store.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, state, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (id) DO UPDATE
		 SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at`,
		snapshotRow, payload)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load implements store.Snapshotter.Load.
func (s *SnapshotStore) Load(ctx context.Context) (*store.Snapshot, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM snapshots WHERE id = $1`, snapshotRow).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// Close releases the underlying database connection pool.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
