package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/model"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/repository"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/schema"
)

// SalaHandler implements the CRUD endpoints under /api/salas.
type SalaHandler struct {
	Salas SalaStore
}

func NewSalaHandler(s SalaStore) *SalaHandler { return &SalaHandler{Salas: s} }

// Listar handles GET /api/salas.
func (h *SalaHandler) Listar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	salas, err := h.Salas.Listar(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao listar salas"})
	}
	if salas == nil {
		salas = []model.Sala{}
	}
	return c.JSON(http.StatusOK, salas)
}

// Buscar handles GET /api/salas/:id.
func (h *SalaHandler) Buscar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	sala, err := h.Salas.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSalaNaoEncontrada) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Sala nao encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao buscar sala"})
	}
	return c.JSON(http.StatusOK, sala)
}

// Criar handles POST /api/salas.
func (h *SalaHandler) Criar(c echo.Context) error {
	body, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados invalidos"})
	}
	if v := schema.Sala.Validar(body); len(v) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v[0]})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	sala := model.Sala{
		Nome:       body["nome"].(string),
		Capacidade: int(body["capacidade"].(float64)),
	}
	if err := h.Salas.Criar(ctx, &sala); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao criar sala"})
	}
	return c.JSON(http.StatusCreated, sala)
}

// Atualizar handles PUT /api/salas/:id.
func (h *SalaHandler) Atualizar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}
	body, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados invalidos"})
	}
	if v := schema.Sala.Validar(body); len(v) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v[0]})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Salas.BuscarPorID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSalaNaoEncontrada) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Sala nao encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar sala"})
	}

	if err := h.Salas.Atualizar(ctx, id, body["nome"].(string), int(body["capacidade"].(float64))); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar sala"})
	}
	sala, err := h.Salas.BuscarPorID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar sala"})
	}
	return c.JSON(http.StatusOK, sala)
}

// Excluir handles DELETE /api/salas/:id.  A sala with dependent sessoes is
// kept and the request rejected.
func (h *SalaHandler) Excluir(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Salas.Excluir(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrSalaComSessoes):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Nao eh possivel excluir sala com sessoes cadastradas"})
		case errors.Is(err, repository.ErrSalaNaoEncontrada):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Sala nao encontrada"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao excluir sala"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Sala excluida com sucesso"})
}
