package service

import (
	"context"
	"fmt"
	"sync"

	"croupier/models"
)

// RoundState exposes the active round and the bets accepted against it.
// Round lifecycle management (opening, locking, payout) lives elsewhere and
// drives SetActive/Reset; bet placement only reads the round and appends.
type RoundState struct {
	mu    sync.RWMutex
	round *models.Round
	bets  []*models.Bet
}

// NewRoundState creates a round state with no active round.
func NewRoundState() *RoundState {
	return &RoundState{}
}

// Active returns the current round, or nil when none is active.
func (s *RoundState) Active() *models.Round {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.round
}

// SetActive replaces the current round and clears the bet list.
func (s *RoundState) SetActive(round *models.Round) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.round = round
	s.bets = nil
}

// AppendBet records an accepted bet against the current round.
func (s *RoundState) AppendBet(bet *models.Bet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bets = append(s.bets, bet)
}

// RestoreRoundState loads the most recent unsettled round and the bets
// already recorded against it, so bet placement resumes where it left off
// after a restart. Returns the restored round, or nil when no round is open.
func RestoreRoundState(ctx context.Context, roundRepo RoundRepository, betRepo BetRepository, rounds *RoundState) (*models.Round, error) {
	round, err := roundRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active round: %w", err)
	}
	if round == nil {
		return nil, nil
	}

	rounds.SetActive(round)

	bets, err := betRepo.GetByRound(ctx, round.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bets for round %d: %w", round.ID, err)
	}
	for _, bet := range bets {
		rounds.AppendBet(bet)
	}

	return round, nil
}

// Bets returns a snapshot of the bets accepted this round.
func (s *RoundState) Bets() []*models.Bet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*models.Bet, len(s.bets))
	copy(snapshot, s.bets)
	return snapshot
}
