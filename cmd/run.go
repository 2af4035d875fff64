package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"croupier/bot"
	"croupier/config"
	"croupier/database"
	"croupier/events"
	"croupier/repository"
	"croupier/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting croupier bot...")

	// Load configuration
	cfg := config.Get()
	options := config.GetBettingOptions()

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	betRepo := repository.NewBetRepository(db)
	roundRepo := repository.NewRoundRepository(db)

	// Initialize in-memory round state and player roster
	roster := service.NewRoster()
	rounds := service.NewRoundState()

	// Warm the round state so bet placement can resume against a round that
	// was already open before a restart
	activeRound, err := service.RestoreRoundState(ctx, roundRepo, betRepo, rounds)
	if err != nil {
		return fmt.Errorf("failed to restore round state: %w", err)
	}
	if activeRound != nil {
		log.Infof("Resumed round %d (status %s) with %d recorded bets", activeRound.ID, activeRound.Status, len(rounds.Bets()))
	} else {
		log.Info("No active round found")
	}

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:            cfg.DiscordToken,
		GuildID:          cfg.DiscordGuildID,
		BettingChannelID: cfg.BettingChannelID,
	}
	deps := bot.Deps{
		PlayerRepo:      playerRepo,
		BetRepo:         betRepo,
		Roster:          roster,
		Rounds:          rounds,
		Options:         options,
		StartingBalance: cfg.StartingBalance,
	}
	discordBot, err := bot.New(botConfig, deps, eventBus)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
