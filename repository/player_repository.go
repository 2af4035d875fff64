package repository

import (
	"context"
	"fmt"

	"croupier/database"
	"croupier/models"
	"github.com/jackc/pgx/v5"
)

// PlayerRepository implements the service.PlayerRepository interface
type PlayerRepository struct {
	db *database.DB
	q  queryable
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{db: db, q: db.Pool}
}

// GetByDiscordID retrieves a player by their Discord ID, joined with the
// spendings account. Returns nil when no such player exists.
func (r *PlayerRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.Player, error) {
	query := `
		SELECT
			p.id,
			p.discord_id,
			p.username,
			p.created_at,
			p.updated_at,
			a.id,
			a.type,
			a.balance
		FROM players p
		JOIN accounts a ON a.player_id = p.id AND a.type = $2
		WHERE p.discord_id = $1
	`

	var player models.Player
	err := r.q.QueryRow(ctx, query, discordID, models.AccountTypeSpendings).Scan(
		&player.ID,
		&player.DiscordID,
		&player.Username,
		&player.CreatedAt,
		&player.UpdatedAt,
		&player.Account.ID,
		&player.Account.Type,
		&player.Account.Balance,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by discord ID %d: %w", discordID, err)
	}

	return &player, nil
}

// Create registers a new player seeded with the initial balance. The player
// row and its spendings account are inserted in a single transaction.
func (r *PlayerRepository) Create(ctx context.Context, discordID int64, username string, initialBalance int64) (*models.Player, error) {
	var player models.Player

	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		playerQuery := `
			INSERT INTO players (discord_id, username)
			VALUES ($1, $2)
			RETURNING id, discord_id, username, created_at, updated_at
		`

		err := tx.QueryRow(ctx, playerQuery, discordID, username).Scan(
			&player.ID,
			&player.DiscordID,
			&player.Username,
			&player.CreatedAt,
			&player.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert player: %w", err)
		}

		accountQuery := `
			INSERT INTO accounts (player_id, type, balance)
			VALUES ($1, $2, $3)
			RETURNING id, type, balance
		`

		err = tx.QueryRow(ctx, accountQuery, player.ID, models.AccountTypeSpendings, initialBalance).Scan(
			&player.Account.ID,
			&player.Account.Type,
			&player.Account.Balance,
		)
		if err != nil {
			return fmt.Errorf("failed to insert spendings account: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create player with discord ID %d: %w", discordID, err)
	}

	return &player, nil
}
