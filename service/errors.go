package service

import "errors"

// Bet placement failure modes. Each maps to a user-visible message at the
// top of the workflow; none propagates past PlaceBet.
var (
	ErrNoActiveRound     = errors.New("no active round")
	ErrRoundLocked       = errors.New("round is locked")
	ErrInvalidBet        = errors.New("invalid bet")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrPlayerUnavailable = errors.New("player could not be resolved")
)
