package service

import (
	"sync"
	"testing"

	"croupier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_GetAndUpsert(t *testing.T) {
	roster := NewRoster()

	assert.Nil(t, roster.Get(123456))

	player := &models.Player{ID: 1, DiscordID: 123456, Username: "testplayer"}
	roster.Upsert(player)

	got := roster.Get(123456)
	require.NotNil(t, got)
	assert.Equal(t, player, got)

	// Upsert with the same player ID replaces the entry
	replacement := &models.Player{ID: 1, DiscordID: 123456, Username: "testplayer", FundsAtRisk: 500}
	roster.Upsert(replacement)

	got = roster.Get(123456)
	require.NotNil(t, got)
	assert.Equal(t, int64(500), got.FundsAtRisk)
	assert.Len(t, roster.All(), 1)
}

func TestRoster_ReplaceAll(t *testing.T) {
	roster := NewRoster()
	roster.Upsert(&models.Player{ID: 1, DiscordID: 1})
	roster.Upsert(&models.Player{ID: 2, DiscordID: 2})

	roster.ReplaceAll([]*models.Player{{ID: 3, DiscordID: 3}})

	assert.Nil(t, roster.Get(1))
	assert.Nil(t, roster.Get(2))
	assert.NotNil(t, roster.Get(3))
	assert.Len(t, roster.All(), 1)
}

func TestRoster_LockPlayerSerializes(t *testing.T) {
	roster := NewRoster()
	roster.Upsert(&models.Player{
		ID:        1,
		DiscordID: 123456,
		Account:   models.Account{Type: models.AccountTypeSpendings, Balance: 1000},
	})

	// Many concurrent debits of 10 against a balance of 1000. Without the
	// per-player lock the read-modify-write interleaves and loses updates.
	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			unlock := roster.LockPlayer(123456)
			defer unlock()

			player := roster.Get(123456)
			updated := *player
			updated.Account.Balance -= 10
			updated.FundsAtRisk += 10
			roster.Upsert(&updated)
		}()
	}

	wg.Wait()

	player := roster.Get(123456)
	require.NotNil(t, player)
	assert.Equal(t, int64(0), player.Balance())
	assert.Equal(t, int64(1000), player.FundsAtRisk)
}

func TestRoster_AllReturnsSnapshot(t *testing.T) {
	roster := NewRoster()
	roster.Upsert(&models.Player{ID: 1, DiscordID: 1})

	snapshot := roster.All()
	roster.Upsert(&models.Player{ID: 2, DiscordID: 2})

	assert.Len(t, snapshot, 1)
	assert.Len(t, roster.All(), 2)
}
