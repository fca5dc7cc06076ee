package auth

import (
	"testing"

	"smartcity/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return &bcryptHasher{cost: bcrypt.MinCost}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Check("secret1", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	// Same plaintext, different stored value, both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret1", first))
	assert.True(t, hasher.Check("secret1", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, hasher.Check("secret1", hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("", hash))

	// A malformed hash verifies false, it never errors.
	assert.False(t, hasher.Check("secret1", "not_a_bcrypt_hash"))
	assert.False(t, hasher.Check("secret1", ""))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)

	// Out-of-range cost falls back to the bcrypt default.
	cfg = &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher, ok = NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher, ok = NewBcryptHasher(nil).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
