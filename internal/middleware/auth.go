package middleware // reusable HTTP middleware for the API

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/utils"
)

// CookieToken is the cookie that carries the session JWT.  The token never
// appears in a JSON body; this cookie is the only transport.
const CookieToken = "token"

// Context keys under which AuthJWT stores the verified identity.
const (
	CtxUsuarioID    = "usuario_id"
	CtxUsuarioEmail = "usuario_email"
	CtxUsuarioNome  = "usuario_nome"
)

// AuthJWT returns an Echo middleware that gates protected routes on the
// session cookie.  A missing cookie, a bad signature and an expired token
// each answer 401 with their own message; on success the verified claims
// are attached to the request context for downstream handlers.
func AuthJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieToken)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "Acesso negado. Token nao fornecido.",
				})
			}
			claims, err := utils.VerificarToken(secret, cookie.Value)
			if err != nil {
				if errors.Is(err, utils.ErrTokenExpirado) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token expirado"})
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token invalido"})
			}
			c.Set(CtxUsuarioID, claims.ID)
			c.Set(CtxUsuarioEmail, claims.Email)
			c.Set(CtxUsuarioNome, claims.Nome)
			return next(c)
		}
	}
}

// UsuarioAutenticado recovers the identity stored by AuthJWT.  The boolean
// is false when the route ran without the middleware.
func UsuarioAutenticado(c echo.Context) (utils.Claims, bool) {
	id, ok := c.Get(CtxUsuarioID).(uint64)
	if !ok || id == 0 {
		return utils.Claims{}, false
	}
	email, _ := c.Get(CtxUsuarioEmail).(string)
	nome, _ := c.Get(CtxUsuarioNome).(string)
	return utils.Claims{ID: id, Email: email, Nome: nome}, true
}
