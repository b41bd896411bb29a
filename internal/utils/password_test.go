package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordVerify(t *testing.T) {
	hash, err := HashPassword("segredo123", 4)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, VerifyPassword(hash, "segredo123"))
	assert.False(t, VerifyPassword(hash, "segredo124"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestHashPasswordSaltDiferente(t *testing.T) {
	h1, err := HashPassword("segredo123", 4)
	require.NoError(t, err)
	h2, err := HashPassword("segredo123", 4)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPasswordHashInvalido(t *testing.T) {
	assert.False(t, VerifyPassword("nao-eh-bcrypt", "segredo123"))
}

func TestHashPasswordCustoForaDaFaixa(t *testing.T) {
	for _, custo := range []int{0, -1, bcrypt.MaxCost + 1} {
		hash, err := HashPassword("segredo123", custo)
		require.NoError(t, err)

		got, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, got)
	}
}
