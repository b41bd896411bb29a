package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and verifying signed tokens
)

// Verification failure kinds.  The middleware needs to tell an expired token
// apart from every other kind so it can answer with a distinct message.
var (
	// ErrTokenExpirado means the token was well formed and correctly signed
	// but its exp claim is in the past.
	ErrTokenExpirado = errors.New("token expirado")
	// ErrAssinaturaInvalida means the signature does not match the secret
	// or the signing method is not HS256.
	ErrAssinaturaInvalida = errors.New("assinatura do token invalida")
	// ErrTokenMalformado covers everything else: garbage input, missing
	// segments, claims that do not decode.
	ErrTokenMalformado = errors.New("token malformado")
)

// Claims is the identity embedded in a session token.  The token itself is
// ephemeral and never persisted; it travels only in the HTTP-only cookie.
type Claims struct {
	ID    uint64 // user id
	Email string // user email
	Nome  string // user display name
}

// NovoToken builds and signs an HS256 JWT asserting the given identity.
// The expiration is now + ttlMin minutes.
func NovoToken(secret string, c Claims, ttlMin int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":    c.ID,
		"email": c.Email,
		"nome":  c.Nome,
		"exp":   now.Add(time.Duration(ttlMin) * time.Minute).Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerificarToken parses and validates a token string and recovers its
// claims.  On failure it returns exactly one of ErrTokenExpirado,
// ErrAssinaturaInvalida or ErrTokenMalformado.
func VerificarToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything other than HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpirado
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrAssinaturaInvalida
		default:
			return Claims{}, ErrTokenMalformado
		}
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return Claims{}, ErrTokenMalformado
	}

	var c Claims
	// JWT numeric values decode as float64.
	if id, ok := mc["id"].(float64); ok {
		c.ID = uint64(id)
	}
	c.Email, _ = mc["email"].(string)
	c.Nome, _ = mc["nome"].(string)
	if c.ID == 0 {
		return Claims{}, ErrTokenMalformado
	}
	return c, nil
}
