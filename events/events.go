package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypePlayerJoined EventType = "player_joined"
	EventTypeBetPlaced    EventType = "bet_placed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// PlayerJoinedEvent represents a player joining the current round, either
// from the persistent store or as a fresh registration.
type PlayerJoinedEvent struct {
	PlayerID        int64
	DiscordID       int64
	Username        string
	Balance         int64
	NewRegistration bool
}

func (e PlayerJoinedEvent) Type() EventType {
	return EventTypePlayerJoined
}

// BetPlacedEvent represents a bet that was accepted against the active round.
type BetPlacedEvent struct {
	BetID      int64
	PlayerID   int64
	DiscordID  int64
	RoundID    int64
	Selector   string
	Amount     int64
	NewBalance int64
}

func (e BetPlacedEvent) Type() EventType {
	return EventTypeBetPlaced
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Publish delivers an event to all registered handlers. Handlers run
// asynchronously so a slow subscriber cannot stall bet processing.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	ctx := context.Background()
	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}
