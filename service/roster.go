package service

import (
	"sync"

	"croupier/models"
)

// Roster is the in-memory cache of players active in the current process.
// Entries are created on a player's first bet and live for the process
// lifetime. The roster is shared by every concurrently running bet workflow,
// so all access goes through the mutex, and settlement additionally holds a
// per-player lock between the balance check and the roster replace so two
// concurrent bets by the same player cannot both spend the same funds.
type Roster struct {
	mu      sync.RWMutex
	players []*models.Player

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex // keyed by Discord ID
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		locks: make(map[int64]*sync.Mutex),
	}
}

// Get returns the cached player with the given Discord ID, or nil.
func (r *Roster) Get(discordID int64) *models.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, player := range r.players {
		if player.DiscordID == discordID {
			return player
		}
	}
	return nil
}

// Upsert replaces the roster entry with the same player ID, or appends the
// player if absent. The replace is a full-entry swap: callers pass a fresh
// Player value rather than mutating the cached one in place.
func (r *Roster) Upsert(player *models.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.players {
		if existing.ID == player.ID {
			r.players[i] = player
			return
		}
	}
	r.players = append(r.players, player)
}

// ReplaceAll swaps the entire roster contents.
func (r *Roster) ReplaceAll(players []*models.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = players
}

// All returns a snapshot of the current roster entries.
func (r *Roster) All() []*models.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*models.Player, len(r.players))
	copy(snapshot, r.players)
	return snapshot
}

// LockPlayer serializes settlement for a single player. The returned func
// releases the lock.
func (r *Roster) LockPlayer(discordID int64) func() {
	r.locksMu.Lock()
	lock, ok := r.locks[discordID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[discordID] = lock
	}
	r.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}
