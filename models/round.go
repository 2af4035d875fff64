package models

import "time"

// RoundStatus gates bet acceptance. Only OPEN rounds accept bets.
type RoundStatus string

const (
	RoundStatusOpen    RoundStatus = "OPEN"
	RoundStatusLocked  RoundStatus = "LOCKED"
	RoundStatusSettled RoundStatus = "SETTLED"
)

// Round is a time-boxed betting session. A nil *Round means no round is
// active. Lifecycle management lives outside bet placement; this core only
// reads the id and status.
type Round struct {
	ID        int64       `db:"id"`
	Status    RoundStatus `db:"status"`
	CreatedAt time.Time   `db:"created_at"`
}

// AcceptsBets reports whether the round is open for betting.
func (r *Round) AcceptsBets() bool {
	return r != nil && r.Status == RoundStatusOpen
}
