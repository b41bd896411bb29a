package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestNovoTokenRoundTrip(t *testing.T) {
	in := Claims{ID: 42, Email: "maria@example.com", Nome: "Maria"}

	token, err := NovoToken(testSecret, in, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err := VerificarToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestVerificarTokenExpirado(t *testing.T) {
	token, err := NovoToken(testSecret, Claims{ID: 1, Email: "a@b.c", Nome: "A"}, -1)
	require.NoError(t, err)

	_, err = VerificarToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenExpirado)
}

func TestVerificarTokenAssinaturaInvalida(t *testing.T) {
	token, err := NovoToken("outro-segredo", Claims{ID: 1, Email: "a@b.c", Nome: "A"}, 60)
	require.NoError(t, err)

	_, err = VerificarToken(testSecret, token)
	assert.ErrorIs(t, err, ErrAssinaturaInvalida)
}

func TestVerificarTokenMalformado(t *testing.T) {
	_, err := VerificarToken(testSecret, "nao.eh.jwt")
	assert.ErrorIs(t, err, ErrTokenMalformado)

	_, err = VerificarToken(testSecret, "")
	assert.ErrorIs(t, err, ErrTokenMalformado)
}

func TestVerificarTokenMetodoNaoHMAC(t *testing.T) {
	// alg=none never passes, whatever the claims say.
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerificarToken(testSecret, raw)
	assert.Error(t, err)
}

func TestVerificarTokenSemID(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.c",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	raw, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerificarToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrTokenMalformado)
}
