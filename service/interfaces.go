package service

import (
	"context"

	"croupier/events"
	"croupier/models"
)

// PlayerRepository defines the interface for player data access
type PlayerRepository interface {
	// GetByDiscordID retrieves a player by their Discord ID, including the
	// spendings account. Returns nil when no such player exists.
	GetByDiscordID(ctx context.Context, discordID int64) (*models.Player, error)

	// Create registers a new player seeded with the initial balance. The
	// player row and its spendings account are created atomically.
	Create(ctx context.Context, discordID int64, username string, initialBalance int64) (*models.Player, error)
}

// BetRepository defines the interface for bet data access
type BetRepository interface {
	// Create persists a new bet record, filling in its ID and CreatedAt
	Create(ctx context.Context, bet *models.Bet) error

	// GetByRound returns all bets recorded against a round
	GetByRound(ctx context.Context, roundID int64) ([]*models.Bet, error)

	// GetPendingByPlayer returns a player's pending bets for a round
	GetPendingByPlayer(ctx context.Context, playerID, roundID int64) ([]*models.Bet, error)
}

// RoundRepository defines the interface for round data access. Round
// creation stays on the concrete repository; the betting workflow only ever
// reads rounds.
type RoundRepository interface {
	// GetActive returns the most recent non-settled round, or nil
	GetActive(ctx context.Context) (*models.Round, error)
}

// Notifier delivers a user-facing status message to the betting channel.
// Delivery is fire-and-forget; failures are logged by the implementation.
type Notifier interface {
	Notify(ctx context.Context, discordID int64, message string) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// BettingService defines the interface for the bet placement workflow
type BettingService interface {
	// PlaceBet runs the full workflow for a single wager: round gates,
	// validation, player resolution, balance check, persistence and roster
	// update. All failures are handled locally and reported to the user.
	PlaceBet(ctx context.Context, discordID int64, username string, rawAmount, rawSelector string) (*models.Bet, error)
}
