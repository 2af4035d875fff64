package repository

import (
	"context"
	"testing"

	"croupier/models"
	"croupier/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetRepository_Create(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	playerRepo := NewPlayerRepository(testDB.DB)
	roundRepo := NewRoundRepository(testDB.DB)
	betRepo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	player, err := playerRepo.Create(ctx, 123456, "testplayer", 100000)
	require.NoError(t, err)

	round := testutil.CreateTestRound()
	require.NoError(t, roundRepo.Create(ctx, round))

	t.Run("pending bet persisted", func(t *testing.T) {
		bet := testutil.CreateTestBet(player.ID, round.ID, "17", 50000)

		err := betRepo.Create(ctx, bet)
		require.NoError(t, err)

		assert.NotZero(t, bet.ID)
		assert.False(t, bet.CreatedAt.IsZero())
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		bet := testutil.CreateTestBet(player.ID, round.ID, "red", 0)
		bet.Amount = 0

		err := betRepo.Create(ctx, bet)
		assert.Error(t, err)
	})

	t.Run("unknown round rejected", func(t *testing.T) {
		bet := testutil.CreateTestBet(player.ID, 999999, "red", 1000)

		err := betRepo.Create(ctx, bet)
		assert.Error(t, err)
	})
}

func TestBetRepository_GetByRound(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	playerRepo := NewPlayerRepository(testDB.DB)
	roundRepo := NewRoundRepository(testDB.DB)
	betRepo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	player, err := playerRepo.Create(ctx, 123456, "testplayer", 100000)
	require.NoError(t, err)

	round := testutil.CreateTestRound()
	require.NoError(t, roundRepo.Create(ctx, round))

	otherRound := testutil.CreateTestRound()
	require.NoError(t, roundRepo.Create(ctx, otherRound))

	require.NoError(t, betRepo.Create(ctx, testutil.CreateTestBet(player.ID, round.ID, "red", 500)))
	require.NoError(t, betRepo.Create(ctx, testutil.CreateTestBet(player.ID, round.ID, "17", 300)))
	require.NoError(t, betRepo.Create(ctx, testutil.CreateTestBet(player.ID, otherRound.ID, "black", 200)))

	bets, err := betRepo.GetByRound(ctx, round.ID)
	require.NoError(t, err)
	require.Len(t, bets, 2)

	assert.Equal(t, "red", bets[0].Selector)
	assert.Equal(t, int64(500), bets[0].Amount)
	assert.Equal(t, models.BetStatePending, bets[0].State)
	assert.Equal(t, "17", bets[1].Selector)
}

func TestBetRepository_GetPendingByPlayer(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	playerRepo := NewPlayerRepository(testDB.DB)
	roundRepo := NewRoundRepository(testDB.DB)
	betRepo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	player, err := playerRepo.Create(ctx, 123456, "testplayer", 100000)
	require.NoError(t, err)
	other, err := playerRepo.Create(ctx, 654321, "otherplayer", 100000)
	require.NoError(t, err)

	round := testutil.CreateTestRound()
	require.NoError(t, roundRepo.Create(ctx, round))

	require.NoError(t, betRepo.Create(ctx, testutil.CreateTestBet(player.ID, round.ID, "red", 500)))
	require.NoError(t, betRepo.Create(ctx, testutil.CreateTestBet(other.ID, round.ID, "red", 900)))

	bets, err := betRepo.GetPendingByPlayer(ctx, player.ID, round.ID)
	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, player.ID, bets[0].PlayerID)
	assert.Equal(t, int64(500), bets[0].Amount)
}

func TestRoundRepository_GetActive(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	roundRepo := NewRoundRepository(testDB.DB)
	ctx := context.Background()

	t.Run("no rounds", func(t *testing.T) {
		round, err := roundRepo.GetActive(ctx)
		require.NoError(t, err)
		assert.Nil(t, round)
	})

	t.Run("open round returned", func(t *testing.T) {
		round := testutil.CreateTestRound()
		require.NoError(t, roundRepo.Create(ctx, round))

		active, err := roundRepo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, round.ID, active.ID)
		assert.Equal(t, models.RoundStatusOpen, active.Status)
	})

	t.Run("settled rounds skipped", func(t *testing.T) {
		settled := &models.Round{Status: models.RoundStatusSettled}
		require.NoError(t, roundRepo.Create(ctx, settled))

		active, err := roundRepo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.NotEqual(t, settled.ID, active.ID)
	})
}
