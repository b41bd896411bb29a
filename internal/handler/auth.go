package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/config"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/middleware"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/queue"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/repository"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/schema"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/utils"
)

// AuthHandler bundles the dependencies of the auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Usuarios UsuarioStore
	Eventos  Eventos
}

func NewAuthHandler(cfg config.Config, u UsuarioStore, ev Eventos) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Usuarios: u, Eventos: ev}
}

// Register handles POST /api/auth/register.  The only creation path for
// user accounts.
func (h *AuthHandler) Register(c echo.Context) error {
	body, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados invalidos"})
	}
	if v := schema.Registro.Validar(body); len(v) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v[0]})
	}
	nome := body["nome"].(string)
	email := body["email"].(string)
	senha := body["senha"].(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	// Pre-check keeps the friendly message; the unique index still backs it
	// up if a concurrent registration wins the race.
	if _, err := h.Usuarios.BuscarPorEmail(ctx, email); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Este email ja esta cadastrado"})
	} else if !errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao registrar usuario"})
	}

	hash, err := utils.HashPassword(senha, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao registrar usuario"})
	}

	u, err := h.Usuarios.Criar(ctx, nome, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExiste) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Este email ja esta cadastrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao registrar usuario"})
	}

	if h.Eventos != nil {
		h.Eventos.UsuarioRegistrado(ctx, queue.UsuarioRegistrado{
			UsuarioID:    u.ID,
			Nome:         u.Nome,
			Email:        u.Email,
			RegistradoEm: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Usuario registrado com sucesso",
		"usuario": echo.Map{"id": u.ID, "nome": u.Nome, "email": u.Email},
	})
}

// Login handles POST /api/auth/login.  On success the signed token travels
// back in an HTTP-only cookie; it never appears in the JSON body.  Unknown
// email and wrong password answer with the same message so accounts cannot
// be enumerated.
func (h *AuthHandler) Login(c echo.Context) error {
	body, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados invalidos"})
	}
	if v := schema.Login.Validar(body); len(v) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v[0]})
	}
	email := body["email"].(string)
	senha := body["senha"].(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Usuarios.BuscarPorEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Email ou senha incorretos"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao fazer login"})
	}
	if !utils.VerifyPassword(u.Senha, senha) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Email ou senha incorretos"})
	}

	token, err := utils.NovoToken(h.Cfg.JWTSecret, utils.Claims{ID: u.ID, Email: u.Email, Nome: u.Nome}, h.Cfg.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao fazer login"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieToken,
		Value:    token,
		Path:     "/",
		MaxAge:   h.Cfg.TokenTTLMin * 60,
		HttpOnly: true,
		Secure:   h.Cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login realizado com sucesso",
		"usuario": echo.Map{"id": u.ID, "nome": u.Nome, "email": u.Email},
	})
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieToken,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout realizado com sucesso"})
}

// Me handles GET /api/auth/me (protected) and returns the current user.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := middleware.UsuarioAutenticado(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Acesso negado. Token nao fornecido."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Usuarios.BuscarPorID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Usuario nao encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao buscar dados do usuario"})
	}
	// model.Usuario hides the hash from JSON.
	return c.JSON(http.StatusOK, u)
}
