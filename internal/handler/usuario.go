package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/config"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/middleware"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/model"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/repository"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/schema"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/utils"
)

// UsuarioHandler implements the account endpoints under /api/usuarios.
// There is no create here: registration is the only creation path.
type UsuarioHandler struct {
	Cfg      config.Config
	Usuarios UsuarioStore
}

func NewUsuarioHandler(cfg config.Config, u UsuarioStore) *UsuarioHandler {
	return &UsuarioHandler{Cfg: cfg, Usuarios: u}
}

// Listar handles GET /api/usuarios.  The password hash never leaves the
// model's JSON encoding.
func (h *UsuarioHandler) Listar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	usuarios, err := h.Usuarios.Listar(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao listar usuarios"})
	}
	if usuarios == nil {
		usuarios = []model.Usuario{}
	}
	return c.JSON(http.StatusOK, usuarios)
}

// Buscar handles GET /api/usuarios/:id.
func (h *UsuarioHandler) Buscar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Usuarios.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Usuario nao encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao buscar usuario"})
	}
	return c.JSON(http.StatusOK, u)
}

// Atualizar handles PUT /api/usuarios/:id.  Nome and email are always
// updated; the password only when a new senha is supplied.
func (h *UsuarioHandler) Atualizar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}
	body, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados invalidos"})
	}
	if v := schema.AtualizarUsuario.Validar(body); len(v) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v[0]})
	}
	nome := body["nome"].(string)
	email := body["email"].(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Usuarios.BuscarPorID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Usuario nao encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar usuario"})
	}

	// The new email may not belong to another account.
	if existente, err := h.Usuarios.BuscarPorEmail(ctx, email); err == nil && existente.ID != id {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email ja esta em uso"})
	} else if err != nil && !errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar usuario"})
	}

	var senhaHash string
	if senha, ok := body["senha"].(string); ok && senha != "" {
		senhaHash, err = utils.HashPassword(senha, h.Cfg.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar usuario"})
		}
	}

	if err := h.Usuarios.Atualizar(ctx, id, nome, email, senhaHash); err != nil {
		if errors.Is(err, repository.ErrEmailExiste) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email ja esta em uso"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar usuario"})
	}

	u, err := h.Usuarios.BuscarPorID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar usuario"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":      u.ID,
		"nome":    u.Nome,
		"email":   u.Email,
		"message": "Usuario atualizado com sucesso",
	})
}

// Excluir handles DELETE /api/usuarios/:id.  A user may not delete their
// own account; the guard runs before any store access.
func (h *UsuarioHandler) Excluir(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}

	if claims, ok := middleware.UsuarioAutenticado(c); ok && claims.ID == id {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Voce nao pode excluir sua propria conta"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Usuarios.Excluir(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Usuario nao encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao excluir usuario"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Usuario excluido com sucesso"})
}
