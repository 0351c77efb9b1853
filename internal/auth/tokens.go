// Package auth holds the bearer-token gate. Tokens are opaque random
// strings held in a process-lifetime set: no expiry, no persistence across
// restarts. The store is injected wherever token checks happen so it can be
// swapped for a persistent implementation without touching route logic.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// TokenStore is the set of currently-valid bearer tokens.
type TokenStore interface {
	// Issue generates a new token and adds it to the valid set.
	Issue() (string, error)
	// Check reports whether token is currently valid.
	Check(token string) bool
	// Revoke removes token from the valid set. Revoking an unknown token
	// is not an error.
	Revoke(token string)
}

// MemoryTokenStore keeps the valid set in process memory, safe for
// concurrent issue/check/revoke.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]struct{})}
}

// Issue returns a 256-bit random token in hex.
func (s *MemoryTokenStore) Issue() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryTokenStore) Check(token string) bool {
	s.mu.RLock()
	_, ok := s.tokens[token]
	s.mu.RUnlock()
	return ok
}

func (s *MemoryTokenStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
