package auth

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallets produce v as 27/28; go-ethereum expects 0/1.
const legacyRecoveryOffset = 27

// VerifyEIP191Signature recovers the wallet that personal_sign'ed message.
func VerifyEIP191Signature(message, signature string) (common.Address, error) {
	if !strings.HasPrefix(signature, "0x") {
		signature = "0x" + signature
	}
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length: expected %d, got %d",
			crypto.SignatureLength, len(sig))
	}
	if sig[crypto.RecoveryIDOffset] >= legacyRecoveryOffset {
		sig[crypto.RecoveryIDOffset] -= legacyRecoveryOffset
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// SignEIP191 signs message the way wallets implement personal_sign.
func SignEIP191(message string, key *ecdsa.PrivateKey) (string, error) {
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += legacyRecoveryOffset
	return hexutil.Encode(sig), nil
}

// ValidateEVMAddress reports whether address is a 0x-prefixed 20-byte hex string.
func ValidateEVMAddress(address string) bool {
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}

// ParseAddress validates and parses a wallet address from user input.
func ParseAddress(address string) (common.Address, error) {
	if !ValidateEVMAddress(address) {
		return common.Address{}, fmt.Errorf("invalid address %q", address)
	}
	return common.HexToAddress(address), nil
}
