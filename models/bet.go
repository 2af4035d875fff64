package models

import "time"

// BetState represents the lifecycle of a roulette bet. Bet placement only
// ever creates pending bets; resolution to won/lost/void happens when the
// round is settled.
type BetState string

const (
	BetStatePending BetState = "PENDING"
	BetStateWon     BetState = "WON"
	BetStateLost    BetState = "LOST"
	BetStateVoid    BetState = "VOID"
)

// Bet represents a single wager recorded against a round.
type Bet struct {
	ID        int64     `db:"id"`
	Selector  string    `db:"selector"` // outcome key: a number, color, or range
	Amount    int64     `db:"amount"`   // minor units, always > 0
	State     BetState  `db:"state"`
	PlayerID  int64     `db:"player_id"`
	RoundID   int64     `db:"round_id"`
	CreatedAt time.Time `db:"created_at"`
}
