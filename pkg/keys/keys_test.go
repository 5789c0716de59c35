package keys

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestMasterKeyRoundTrip(t *testing.T) {
	key, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey() failed: %v", err)
	}

	decoded, err := MasterKeyFromBase64(MasterKeyToBase64(key))
	if err != nil {
		t.Fatalf("MasterKeyFromBase64() failed: %v", err)
	}
	if !bytes.Equal(key, decoded) {
		t.Error("decoded master key does not match")
	}
}

func TestMasterKeyFromBase64_Invalid(t *testing.T) {
	if _, err := MasterKeyFromBase64("not base64!"); err == nil {
		t.Error("expected invalid base64 to fail")
	}
	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	if _, err := MasterKeyFromBase64(short); err == nil {
		t.Error("expected short key to fail")
	}
}

func TestMasterKeyFromEnv(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, MasterKeySize)
	t.Setenv("TEST_MASTER_KEY", MasterKeyToBase64(key))

	got, err := MasterKeyFromEnv("TEST_MASTER_KEY")
	if err != nil {
		t.Fatalf("MasterKeyFromEnv() failed: %v", err)
	}
	if !bytes.Equal(key, got) {
		t.Error("unexpected master key")
	}

	if _, err := MasterKeyFromEnv("TEST_MASTER_KEY_UNSET"); err == nil {
		t.Error("expected unset variable to fail")
	}
}

func TestDeriveKey(t *testing.T) {
	master := bytes.Repeat([]byte{0x01}, MasterKeySize)

	k1, err := SessionSigningKey(master)
	if err != nil {
		t.Fatalf("SessionSigningKey() failed: %v", err)
	}
	k2, err := SessionSigningKey(master)
	if err != nil {
		t.Fatalf("SessionSigningKey() second call failed: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("derivation is not deterministic")
	}

	other, err := DeriveKey(master, "other-purpose", 32)
	if err != nil {
		t.Fatalf("DeriveKey() failed: %v", err)
	}
	if bytes.Equal(k1, other) {
		t.Error("different purposes must derive different keys")
	}
	if bytes.Equal(k1, master) {
		t.Error("derived key must differ from master key")
	}

	if _, err := DeriveKey([]byte("short"), PurposeSessionJWT, 32); err == nil {
		t.Error("expected short master key to fail")
	}
}

func TestPrivateKeyFromHex(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	hexKey := hexutil.Encode(crypto.FromECDSA(key))

	parsed, err := PrivateKeyFromHex(hexKey)
	if err != nil {
		t.Fatalf("PrivateKeyFromHex() failed: %v", err)
	}
	if crypto.PubkeyToAddress(parsed.PublicKey) != crypto.PubkeyToAddress(key.PublicKey) {
		t.Error("parsed key has a different address")
	}

	if _, err := PrivateKeyFromHex("0xzz"); err == nil {
		t.Error("expected invalid hex to fail")
	}
}
