package repository

import (
	"context"
	"fmt"

	"croupier/database"
	"croupier/models"
	"github.com/jackc/pgx/v5"
)

// BetRepository implements the service.BetRepository interface
type BetRepository struct {
	q queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) *BetRepository {
	return &BetRepository{q: db.Pool}
}

// Create persists a new bet record
func (r *BetRepository) Create(ctx context.Context, bet *models.Bet) error {
	query := `
		INSERT INTO bets (selector, amount, state, player_id, round_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		bet.Selector,
		bet.Amount,
		bet.State,
		bet.PlayerID,
		bet.RoundID,
	).Scan(&bet.ID, &bet.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create bet: %w", err)
	}

	return nil
}

// GetByRound returns all bets recorded against a round
func (r *BetRepository) GetByRound(ctx context.Context, roundID int64) ([]*models.Bet, error) {
	query := `
		SELECT id, selector, amount, state, player_id, round_id, created_at
		FROM bets
		WHERE round_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.q.Query(ctx, query, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets for round %d: %w", roundID, err)
	}
	defer rows.Close()

	return scanBets(rows)
}

// GetPendingByPlayer returns a player's pending bets for a round
func (r *BetRepository) GetPendingByPlayer(ctx context.Context, playerID, roundID int64) ([]*models.Bet, error) {
	query := `
		SELECT id, selector, amount, state, player_id, round_id, created_at
		FROM bets
		WHERE player_id = $1 AND round_id = $2 AND state = $3
		ORDER BY created_at, id
	`

	rows, err := r.q.Query(ctx, query, playerID, roundID, models.BetStatePending)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending bets for player %d: %w", playerID, err)
	}
	defer rows.Close()

	return scanBets(rows)
}

func scanBets(rows pgx.Rows) ([]*models.Bet, error) {
	var bets []*models.Bet
	for rows.Next() {
		var bet models.Bet
		err := rows.Scan(
			&bet.ID,
			&bet.Selector,
			&bet.Amount,
			&bet.State,
			&bet.PlayerID,
			&bet.RoundID,
			&bet.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, &bet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bets: %w", err)
	}

	return bets, nil
}
