package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims are the claims carried by a session token. The subject is the
// checksummed wallet address.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// Wallet returns the wallet the session was issued to.
func (c *SessionClaims) Wallet() common.Address {
	return common.HexToAddress(c.Subject)
}

// SessionManager issues and validates HS256 session tokens.
type SessionManager struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a session manager signing with key.
func NewSessionManager(key []byte, issuer string, ttl time.Duration) (*SessionManager, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("empty session signing key")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	return &SessionManager{
		key:    key,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a session token for wallet and returns it with its expiry.
func (m *SessionManager) Issue(wallet common.Address) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   wallet.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session: %w", err)
	}
	return token, expiresAt, nil
}

// Validate parses tokenString and returns its claims if the signature, issuer and
// lifetime are valid.
func (m *SessionManager) Validate(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return m.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if !token.Valid {
		return nil, ErrInvalidSession
	}
	if !ValidateEVMAddress(claims.Subject) {
		return nil, fmt.Errorf("%w: subject is not a wallet address", ErrInvalidSession)
	}
	return claims, nil
}
