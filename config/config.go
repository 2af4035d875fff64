package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken     string
	DiscordGuildID   string
	BettingChannelID string

	// Database configuration
	DatabaseURL string

	// Betting configuration
	StartingBalance int64 // Minor units granted to newly registered players

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID:   os.Getenv("DISCORD_GUILD_ID"),
		BettingChannelID: os.Getenv("BETTING_CHANNEL_ID"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// New players start with $1,000.00
		StartingBalance: 100000,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsedBalance, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsedBalance
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.BettingChannelID == "" {
			return nil, fmt.Errorf("BETTING_CHANNEL_ID is required")
		}
	}

	return config, nil
}
