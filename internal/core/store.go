package core

import "sync"

// BestScoreStore persists one integer per key. Reads never fail:
// a missing or unreadable value is reported as 0.
type BestScoreStore interface {
	Get(key string) int
	Set(key string, value int)
}

// Best-score keys, one per game.
const (
	KeyFlappyBest    = "flappy_best"
	KeyJumperBest    = "jumper_best"
	KeySnakeBest     = "snake_best"
	KeyTicTacToeBest = "tictactoe_best"
)

// MemoryStore is a BestScoreStore kept in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// Get returns the stored value or 0.
func (m *MemoryStore) Get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

// Set stores value under key.
func (m *MemoryStore) Set(key string, value int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// BestRaiser is implemented by stores that can compare and write a best
// score in one step. Stores shared between sessions must implement it, or a
// lower score written late can replace a higher one.
type BestRaiser interface {
	Raise(key string, value int) (best int, raised bool)
}

// Raise stores value under key if it beats the stored value.
func (m *MemoryStore) Raise(key string, value int) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if best := m.values[key]; value <= best {
		return best, false
	}
	m.values[key] = value
	return value, true
}

// UpdateBest stores score under key when it beats the current best.
// It returns the resulting best and whether it changed.
func UpdateBest(store BestScoreStore, key string, score int) (int, bool) {
	if r, ok := store.(BestRaiser); ok {
		return r.Raise(key, score)
	}
	best := store.Get(key)
	if score <= best {
		return best, false
	}
	store.Set(key, score)
	return score, true
}

// BestKey returns the store key holding the best score of a game.
func BestKey(gameID string) string {
	return gameID + "_best"
}
