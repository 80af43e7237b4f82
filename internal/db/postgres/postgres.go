// Package postgres manages the PostgreSQL connection pool and the embedded
// migration mechanism.
//
// pgxpool handles reconnection, health checks and bounds the number of open
// connections, so repositories can share one pool across goroutines.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/config"
)

// NewPool creates a connection pool from the configured DSN and verifies the
// database is reachable before returning it.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("gagal parse DSN: %w", err)
	}

	poolConfig.MaxConns = cfg.DBMaxConns
	poolConfig.MinConns = cfg.DBMinConns
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database tidak bisa diakses: %w", err)
	}

	log.Info("Koneksi PostgreSQL siap")
	return pool, nil
}

// EnsureMigrationTable creates the schema_migrations bookkeeping table.
// Migrations themselves are embedded in internal/app and applied through
// ApplyMigration; no external migration tool is involved, which keeps the
// deploy a single binary.
func EnsureMigrationTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("gagal membuat tabel migrasi: %w", err)
	}
	return nil
}
