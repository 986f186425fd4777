package cryptox

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveMasterKey(password, salt)
	key2 := DeriveMasterKey(password, salt)

	assert.True(t, bytes.Equal(key1, key2), "same password and salt must derive the same key")
	assert.Len(t, key1, 32)

	// snapshot to catch accidental changes to the argon2 parameters
	expectedHex := "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39"
	assert.Equal(t, expectedHex, hex.EncodeToString(key1))
}

func TestDeriveMasterKey_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveMasterKey(password, []byte("salt-one"))
	key2 := DeriveMasterKey(password, []byte("salt-two"))
	assert.False(t, bytes.Equal(key1, key2), "different salts must derive different keys")

	key3 := DeriveMasterKey([]byte("other-password"), []byte("salt-one"))
	assert.False(t, bytes.Equal(key1, key3), "different passwords must derive different keys")
}

func TestMakeVerifier(t *testing.T) {
	key := DeriveMasterKey([]byte("secret-password"), []byte("fixed-salt"))

	verifier := MakeVerifier(key)

	want := sha256.Sum256(key)
	assert.Equal(t, want[:], verifier)
	assert.Len(t, verifier, sha256.Size)

	// the verifier must not leak the key itself
	assert.False(t, bytes.Equal(verifier, key))
}
