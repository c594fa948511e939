package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Verify(hash, "s3cret"))
	assert.False(t, h.Verify(hash, "wrong"))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ")
	assert.True(t, h.Verify(first, "same-password"))
	assert.True(t, h.Verify(second, "same-password"))
}

func TestBcryptHasher_HashNeverStoresPlaintext(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("visible-password")
	require.NoError(t, err)
	assert.NotContains(t, hash, "visible-password")
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	h := NewBcryptHasher(4)

	_, err := h.Hash("")
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	h := NewBcryptHasher(4)

	assert.False(t, h.Verify("", "password"))
	assert.False(t, h.Verify("not-a-bcrypt-hash", "password"))
	assert.False(t, h.Verify("$2a$garbage", "password"))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(99)

	hash, err := h.Hash("pw")
	require.NoError(t, err)
	assert.True(t, h.Verify(hash, "pw"))
}
