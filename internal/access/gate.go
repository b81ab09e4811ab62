// Package access holds the session-scoped write gate. The gate starts
// locked; a successful secret check unlocks mutations until Lock is called
// or the process ends. Reads never consult it.
package access

import (
	"sync"

	"inventory-manager/internal/hashing"
)

type Gate struct {
	hasher     *hashing.Bcrypt
	secretHash string

	mu       sync.RWMutex
	unlocked bool
}

// NewGate builds a locked gate that validates secrets against secretHash.
func NewGate(secretHash string, hasher *hashing.Bcrypt) *Gate {
	return &Gate{
		hasher:     hasher,
		secretHash: secretHash,
	}
}

// Unlock compares secret against the configured hash and, on a match,
// grants write permission for the rest of the session.
func (g *Gate) Unlock(secret string) bool {
	if !g.hasher.Compare(g.secretHash, secret) {
		return false
	}

	g.mu.Lock()
	g.unlocked = true
	g.mu.Unlock()
	return true
}

func (g *Gate) Lock() {
	g.mu.Lock()
	g.unlocked = false
	g.mu.Unlock()
}

func (g *Gate) CanWrite() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.unlocked
}
