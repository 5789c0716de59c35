// Package keys handles the server master secret and wallet private keys.
// Purpose-specific keys are derived from the master secret with HKDF-SHA256 so the
// raw secret is never used directly.
package keys

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/hkdf"
)

// MasterKeySize is the size of the server master secret in bytes.
const MasterKeySize = 32

// Derivation labels for the keys taken from the master secret.
const (
	PurposeSessionJWT = "democracy-chain/session-jwt"
)

// GenerateMasterKey returns a new random master secret.
func GenerateMasterKey() ([]byte, error) {
	key := make([]byte, MasterKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate master key: %w", err)
	}
	return key, nil
}

// MasterKeyFromBase64 decodes a base64-encoded master key
func MasterKeyFromBase64(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode master key: %w", err)
	}
	if len(key) != MasterKeySize {
		return nil, fmt.Errorf("master key must be %d bytes, got %d", MasterKeySize, len(key))
	}
	return key, nil
}

// MasterKeyToBase64 encodes a master key as base64 for storage
func MasterKeyToBase64(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// MasterKeyFromEnv reads and decodes the master key from the named environment variable.
func MasterKeyFromEnv(name string) ([]byte, error) {
	encoded := os.Getenv(name)
	if encoded == "" {
		return nil, fmt.Errorf("environment variable %s is not set", name)
	}
	return MasterKeyFromBase64(encoded)
}

// DeriveKey derives a size-byte key for purpose from the master secret.
func DeriveKey(masterKey []byte, purpose string, size int) ([]byte, error) {
	if len(masterKey) < MasterKeySize {
		return nil, fmt.Errorf("master key must be at least %d bytes", MasterKeySize)
	}

	reader := hkdf.New(sha256.New, masterKey, nil, []byte(purpose))
	key := make([]byte, size)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive %s key: %w", purpose, err)
	}
	return key, nil
}

// SessionSigningKey derives the HMAC key used to sign session tokens.
func SessionSigningKey(masterKey []byte) ([]byte, error) {
	return DeriveKey(masterKey, PurposeSessionJWT, 32)
}

// PrivateKeyFromHex parses a secp256k1 wallet key, with or without 0x prefix.
func PrivateKeyFromHex(s string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}
