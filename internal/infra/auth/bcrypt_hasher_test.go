package auth

import (
	"testing"

	"cafe/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "latte-art-42"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("latte-art-43", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltDiffersPerCall(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("espresso")
	require.NoError(t, err)
	second, err := hasher.Hash("espresso")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("espresso", first))
	assert.True(t, hasher.Check("espresso", second))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.False(t, hasher.Check("espresso", "invalid_hash"))
	assert.False(t, hasher.Check("espresso", ""))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "configured cost", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}, want: 6},
		{name: "nil auth section", cfg: &config.Config{}, want: bcrypt.DefaultCost},
		{name: "out of range", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg)

			hash, err := hasher.Hash("mocha")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cost)
		})
	}
}
