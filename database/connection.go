package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The bot serves a single guild, so bet and registration traffic is light.
// A small pool with a short idle timeout keeps connections from piling up
// between rounds.
const (
	maxPoolConns    = 8
	minPoolConns    = 2
	maxConnIdleTime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// DB wraps the pgx pool shared by the player, bet and round repositories.
type DB struct {
	*pgxpool.Pool
}

// NewConnection opens the shared pool and verifies the database is reachable
// before any repository touches it.
func NewConnection(ctx context.Context, databaseURL string) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	poolConfig.MaxConns = maxPoolConns
	poolConfig.MinConns = minPoolConns
	poolConfig.MaxConnIdleTime = maxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close releases the pool and all of its connections.
func (db *DB) Close() {
	db.Pool.Close()
}
