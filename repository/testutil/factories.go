package testutil

import (
	"time"

	"croupier/models"
)

// CreateTestPlayer creates a test player with default values
func CreateTestPlayer(discordID int64, username string) *models.Player {
	now := time.Now()
	return &models.Player{
		DiscordID: discordID,
		Username:  username,
		Account: models.Account{
			Type:    models.AccountTypeSpendings,
			Balance: 100000,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestPlayerWithBalance creates a test player with a specific balance
func CreateTestPlayerWithBalance(discordID int64, username string, balance int64) *models.Player {
	player := CreateTestPlayer(discordID, username)
	player.Account.Balance = balance
	return player
}

// CreateTestRound creates an open test round
func CreateTestRound() *models.Round {
	return &models.Round{
		Status:    models.RoundStatusOpen,
		CreatedAt: time.Now(),
	}
}

// CreateTestBet creates a pending test bet
func CreateTestBet(playerID, roundID int64, selector string, amount int64) *models.Bet {
	return &models.Bet{
		Selector:  selector,
		Amount:    amount,
		State:     models.BetStatePending,
		PlayerID:  playerID,
		RoundID:   roundID,
		CreatedAt: time.Now(),
	}
}
