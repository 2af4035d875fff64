package service

import (
	"context"
	"fmt"

	"croupier/config"
	"croupier/events"
	"croupier/models"
	"croupier/utils"

	log "github.com/sirupsen/logrus"
)

type bettingService struct {
	playerRepo      PlayerRepository
	betRepo         BetRepository
	roster          *Roster
	rounds          *RoundState
	notifier        Notifier
	publisher       EventPublisher
	options         config.BettingOptions
	startingBalance int64
}

// NewBettingService creates a new betting service
func NewBettingService(
	playerRepo PlayerRepository,
	betRepo BetRepository,
	roster *Roster,
	rounds *RoundState,
	notifier Notifier,
	publisher EventPublisher,
	options config.BettingOptions,
	startingBalance int64,
) BettingService {
	return &bettingService{
		playerRepo:      playerRepo,
		betRepo:         betRepo,
		roster:          roster,
		rounds:          rounds,
		notifier:        notifier,
		publisher:       publisher,
		options:         options,
		startingBalance: startingBalance,
	}
}

// PlaceBet runs the full bet placement workflow. Round gates come before
// validation, validation before any state is touched, and the balance check
// and roster update are serialized per player so concurrent bets cannot
// spend the same funds twice.
func (s *bettingService) PlaceBet(ctx context.Context, discordID int64, username string, rawAmount, rawSelector string) (*models.Bet, error) {
	round := s.rounds.Active()
	if round == nil {
		s.notify(ctx, discordID, "there is currently no active roulette round, please try again soon.")
		return nil, ErrNoActiveRound
	}

	if !round.AcceptsBets() {
		s.notify(ctx, discordID, "the current round is locked, you'll have to wait for the next round.")
		return nil, ErrRoundLocked
	}

	log.WithFields(log.Fields{
		"discordID": discordID,
		"amount":    rawAmount,
		"selector":  rawSelector,
	}).Info("Player is placing a bet")

	if !ValidateBet(rawAmount, rawSelector, s.options) {
		log.WithField("discordID", discordID).Info("Bet failed validation")
		s.notify(ctx, discordID, "that was an invalid bet, please try again.")
		return nil, ErrInvalidBet
	}

	player, err := s.resolvePlayer(ctx, discordID, username, round)
	if err != nil {
		log.WithFields(log.Fields{
			"discordID": discordID,
			"error":     err,
		}).Error("Failed to resolve player")
		s.notify(ctx, discordID, "something went wrong placing your bet, please try again later.")
		return nil, fmt.Errorf("%w: %v", ErrPlayerUnavailable, err)
	}

	// Validation guarantees the raw amount parses.
	stake, _ := ParseStake(rawAmount)

	bet, err := s.settle(ctx, player.DiscordID, stake, rawSelector, round)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"discordID": discordID,
		"betID":     bet.ID,
		"amount":    bet.Amount,
	}).Info("Bet registered against the current round")

	return bet, nil
}

// resolvePlayer returns the roster entry for the player, loading or
// registering them through persistence on a cache miss. Cache hits touch
// neither persistence nor the notifier.
func (s *bettingService) resolvePlayer(ctx context.Context, discordID int64, username string, round *models.Round) (*models.Player, error) {
	if player := s.roster.Get(discordID); player != nil {
		return player, nil
	}

	player, err := s.playerRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up player %d: %w", discordID, err)
	}

	newRegistration := player == nil
	if newRegistration {
		s.notify(ctx, discordID, fmt.Sprintf("you have now been registered, we've gifted you %s to start playing with!", utils.FormatMoney(s.startingBalance)))

		player, err = s.playerRepo.Create(ctx, discordID, username, s.startingBalance)
		if err != nil {
			return nil, fmt.Errorf("failed to register player %d: %w", discordID, err)
		}
	} else {
		// Stored balances are not debited until the round settles, so a
		// player reloaded mid-round gets their pending stakes re-applied
		// before the balance check sees them.
		pending, err := s.betRepo.GetPendingByPlayer(ctx, player.ID, round.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load pending bets for player %d: %w", player.ID, err)
		}
		for _, b := range pending {
			player.Account.Balance -= b.Amount
			player.FundsAtRisk += b.Amount
		}
	}

	player.PreviousPosition = player.Balance()
	s.roster.Upsert(player)

	s.publisher.Publish(events.PlayerJoinedEvent{
		PlayerID:        player.ID,
		DiscordID:       player.DiscordID,
		Username:        player.Username,
		Balance:         player.Balance(),
		NewRegistration: newRegistration,
	})

	log.WithFields(log.Fields{
		"discordID": discordID,
		"playerID":  player.ID,
		"new":       newRegistration,
	}).Info("Player joined the round")

	return player, nil
}

// settle performs the balance check, persists the bet and publishes the
// updated roster entry. The per-player lock covers the whole sequence.
func (s *bettingService) settle(ctx context.Context, discordID int64, stake Stake, selector string, round *models.Round) (*models.Bet, error) {
	unlock := s.roster.LockPlayer(discordID)
	defer unlock()

	// Re-read under the lock: a concurrent settlement may have replaced the
	// roster entry since resolution.
	player := s.roster.Get(discordID)
	if player == nil {
		return nil, fmt.Errorf("%w: player %d left the roster", ErrPlayerUnavailable, discordID)
	}

	amountMinor := ToMinor(stake.Normalize(player.Balance()))

	// Sub-cent amounts like "0.001" survive validation but round to zero
	// here. They must not reach persistence.
	if amountMinor <= 0 {
		s.notify(ctx, discordID, "that was an invalid bet, please try again.")
		return nil, ErrInvalidBet
	}

	if player.Balance() < amountMinor {
		s.notify(ctx, discordID, "you do not have enough funds to place this bet.")
		return nil, ErrInsufficientFunds
	}

	bet := &models.Bet{
		Selector: selector,
		Amount:   amountMinor,
		State:    models.BetStatePending,
		PlayerID: player.ID,
		RoundID:  round.ID,
	}

	if err := s.betRepo.Create(ctx, bet); err != nil {
		log.WithFields(log.Fields{
			"discordID": discordID,
			"roundID":   round.ID,
			"error":     err,
		}).Error("Failed to persist bet")
		s.notify(ctx, discordID, "something went wrong placing your bet, please try again later.")
		return nil, fmt.Errorf("failed to persist bet: %w", err)
	}

	// Full-replace of the roster entry with a fresh value. Account is a
	// value field, so the copy cannot alias the cached entry's balance.
	updated := *player
	updated.Account.Balance -= amountMinor
	updated.FundsAtRisk += amountMinor
	s.roster.Upsert(&updated)

	s.rounds.AppendBet(bet)

	s.publisher.Publish(events.BetPlacedEvent{
		BetID:      bet.ID,
		PlayerID:   player.ID,
		DiscordID:  discordID,
		RoundID:    round.ID,
		Selector:   selector,
		Amount:     amountMinor,
		NewBalance: updated.Balance(),
	})

	s.notify(ctx, discordID, fmt.Sprintf("your bet of %s on '%s' has been placed.", utils.FormatMoney(amountMinor), selector))

	return bet, nil
}

// notify delivers a user-facing message; delivery failures are logged and
// otherwise ignored.
func (s *bettingService) notify(ctx context.Context, discordID int64, message string) {
	if err := s.notifier.Notify(ctx, discordID, message); err != nil {
		log.WithFields(log.Fields{
			"discordID": discordID,
			"error":     err,
		}).Error("Failed to deliver notification")
	}
}
