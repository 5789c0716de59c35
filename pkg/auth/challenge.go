package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

const loginMessageFormat = "DemocracyChain login\naddress: %s\nnonce: %s"

var (
	ErrChallengeNotFound = errors.New("no pending login challenge")
	ErrChallengeExpired  = errors.New("login challenge expired")
	ErrSignatureMismatch = errors.New("signature does not match address")
)

// Challenge is a single-use login nonce issued to a wallet.
type Challenge struct {
	Address   common.Address `json:"address"`
	Nonce     string         `json:"nonce"`
	Message   string         `json:"message"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// LoginMessage returns the text a wallet signs to prove ownership of address.
func LoginMessage(address common.Address, nonce string) string {
	return fmt.Sprintf(loginMessageFormat, address.Hex(), nonce)
}

// ChallengeStore keeps at most one pending challenge per wallet.
type ChallengeStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	pending map[common.Address]*Challenge
}

// NewChallengeStore creates a challenge store whose nonces live for ttl.
func NewChallengeStore(ttl time.Duration) *ChallengeStore {
	return &ChallengeStore{
		ttl:     ttl,
		now:     time.Now,
		pending: make(map[common.Address]*Challenge),
	}
}

// Issue creates a fresh challenge for address, replacing any pending one.
func (s *ChallengeStore) Issue(address common.Address) *Challenge {
	nonce := uuid.NewString()
	c := &Challenge{
		Address:   address,
		Nonce:     nonce,
		Message:   LoginMessage(address, nonce),
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	s.pending[address] = c
	return c
}

// Verify checks that signature signs the pending challenge of address and
// consumes the challenge. A challenge is consumed even when it has expired.
func (s *ChallengeStore) Verify(address common.Address, signature string) error {
	s.mu.Lock()
	c, ok := s.pending[address]
	if ok {
		delete(s.pending, address)
	}
	s.mu.Unlock()

	if !ok {
		return ErrChallengeNotFound
	}
	if !s.now().Before(c.ExpiresAt) {
		return ErrChallengeExpired
	}

	recovered, err := VerifyEIP191Signature(c.Message, signature)
	if err != nil {
		return err
	}
	if recovered != address {
		return ErrSignatureMismatch
	}
	return nil
}

// prune drops expired challenges. Callers hold s.mu.
func (s *ChallengeStore) prune() {
	now := s.now()
	for addr, c := range s.pending {
		if !now.Before(c.ExpiresAt) {
			delete(s.pending, addr)
		}
	}
}
