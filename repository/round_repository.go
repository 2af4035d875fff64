package repository

import (
	"context"
	"fmt"

	"croupier/database"
	"croupier/models"
	"github.com/jackc/pgx/v5"
)

// RoundRepository implements the service.RoundRepository interface
type RoundRepository struct {
	q queryable
}

// NewRoundRepository creates a new round repository
func NewRoundRepository(db *database.DB) *RoundRepository {
	return &RoundRepository{q: db.Pool}
}

// GetActive returns the most recent round that has not been settled, or nil
// when no round is active. Used to warm the in-memory round state at startup.
func (r *RoundRepository) GetActive(ctx context.Context) (*models.Round, error) {
	query := `
		SELECT id, status, created_at
		FROM rounds
		WHERE status <> $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var round models.Round
	err := r.q.QueryRow(ctx, query, models.RoundStatusSettled).Scan(
		&round.ID,
		&round.Status,
		&round.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active round: %w", err)
	}

	return &round, nil
}

// Create persists a new round
func (r *RoundRepository) Create(ctx context.Context, round *models.Round) error {
	query := `
		INSERT INTO rounds (status)
		VALUES ($1)
		RETURNING id, created_at
	`

	if round.Status == "" {
		round.Status = models.RoundStatusOpen
	}

	err := r.q.QueryRow(ctx, query, round.Status).Scan(&round.ID, &round.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create round: %w", err)
	}

	return nil
}
