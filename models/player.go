package models

import (
	"time"
)

// AccountType identifies which of a player's accounts a balance belongs to.
type AccountType string

const (
	AccountTypeSpendings AccountType = "spendings"
)

// Account holds a single balance for a player. Amounts are integer minor
// currency units (cents); user-facing figures divide by 100.
type Account struct {
	ID      int64       `db:"id"`
	Type    AccountType `db:"type"`
	Balance int64       `db:"balance"`
}

// Player represents a Discord user participating in roulette rounds.
// The roster caches Player values for the process lifetime; persistence is
// the source of truth for identity.
type Player struct {
	ID               int64     `db:"id"`
	DiscordID        int64     `db:"discord_id"`
	Username         string    `db:"username"`
	Account          Account   `db:"-"` // spendings account, joined on load
	FundsAtRisk      int64     `db:"-"` // sum of pending bets this round
	PreviousPosition int64     `db:"-"` // balance snapshot at join time
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Balance returns the spendings account balance in minor units.
func (p *Player) Balance() int64 {
	return p.Account.Balance
}
