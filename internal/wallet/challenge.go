package wallet

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var TimeNow = time.Now

var (
	ErrUnknownChallenge error = errors.New("unknown or already used challenge")
	ErrChallengeExpired error = errors.New("challenge expired")
)

// Challenge is a single-use message a client signs to prove it holds the key
// of an address.
type Challenge struct {
	Nonce     string
	Message   string
	ExpiresAt time.Time
}

// ChallengeStore hands out challenges and accepts each one once before it
// expires.
type ChallengeStore struct {
	ttl time.Duration

	mu         sync.Mutex
	challenges map[string]Challenge
}

func NewChallengeStore(ttl time.Duration) *ChallengeStore {
	return &ChallengeStore{
		ttl:        ttl,
		challenges: map[string]Challenge{},
	}
}

func (s *ChallengeStore) Issue() Challenge {
	now := TimeNow().UTC()
	nonce := uuid.NewString()

	challenge := Challenge{
		Nonce:     nonce,
		Message:   fmt.Sprintf("Sign in to crowdfund\nNonce: %s\nIssued At: %s", nonce, now.Format(time.RFC3339)),
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropExpired(now)
	s.challenges[nonce] = challenge

	return challenge
}

// Consume removes the challenge for nonce and returns it if it has not
// expired.
func (s *ChallengeStore) Consume(nonce string) (Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.challenges[nonce]
	if !ok {
		return Challenge{}, ErrUnknownChallenge
	}
	delete(s.challenges, nonce)

	if TimeNow().After(challenge.ExpiresAt) {
		return Challenge{}, ErrChallengeExpired
	}

	return challenge, nil
}

func (s *ChallengeStore) dropExpired(now time.Time) {
	for nonce, challenge := range s.challenges {
		if now.After(challenge.ExpiresAt) {
			delete(s.challenges, nonce)
		}
	}
}
