package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := NewBus()

	eventReceived := make(chan BetPlacedEvent, 1)
	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(EventTypeBetPlaced, func(ctx context.Context, event Event) {
		defer wg.Done()
		if betEvent, ok := event.(BetPlacedEvent); ok {
			select {
			case eventReceived <- betEvent:
			case <-time.After(1 * time.Second):
				t.Error("Timeout sending event to channel")
			}
		} else {
			t.Errorf("Expected BetPlacedEvent, got %T", event)
		}
	})

	testEvent := BetPlacedEvent{
		BetID:      42,
		PlayerID:   7,
		DiscordID:  123456,
		RoundID:    1,
		Selector:   "red",
		Amount:     50000,
		NewBalance: 50000,
	}

	bus.Publish(testEvent)
	wg.Wait()

	received := <-eventReceived
	assert.Equal(t, testEvent, received)
}

func TestBus_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	bus := NewBus()

	done := make(chan struct{})
	go func() {
		bus.Publish(PlayerJoinedEvent{DiscordID: 1})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Publish blocked with no subscribers")
	}
}

func TestBus_PanickingHandlerDoesNotAffectOthers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(EventTypeBetPlaced, func(ctx context.Context, event Event) {
		panic("handler failure")
	})
	bus.Subscribe(EventTypeBetPlaced, func(ctx context.Context, event Event) {
		wg.Done()
	})

	bus.Publish(BetPlacedEvent{BetID: 1})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Second handler was not called")
	}
}
