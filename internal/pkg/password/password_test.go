package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasher_RequiresPepper(t *testing.T) {
	_, err := NewHasher("")
	assert.ErrorIs(t, err, ErrPepperMissing)
}

func TestHashAndCompare_Roundtrip(t *testing.T) {
	h, err := NewHasher("pepper")
	require.NoError(t, err)

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	ok, err := h.Compare("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompare_DifferentPepperFails(t *testing.T) {
	h1, err := NewHasher("pepper-one")
	require.NoError(t, err)
	h2, err := NewHasher("pepper-two")
	require.NoError(t, err)

	hash, err := h1.Hash("password123")
	require.NoError(t, err)

	ok, err := h2.Compare("password123", hash)
	require.NoError(t, err)
	assert.False(t, ok, "hash must be bound to the pepper that produced it")
}

func TestCompare_MalformedHashIsJustFalse(t *testing.T) {
	h, err := NewHasher("pepper")
	require.NoError(t, err)

	ok, err := h.Compare("password123", "not-a-bcrypt-hash")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_SaltedPerCall(t *testing.T) {
	h, err := NewHasher("pepper")
	require.NoError(t, err)

	first, err := h.Hash("password123")
	require.NoError(t, err)
	second, err := h.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
