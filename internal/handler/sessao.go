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

// SessaoHandler implements the CRUD endpoints under /api/sessoes.  It also
// needs the sala store to verify the foreign key before persisting.
type SessaoHandler struct {
	Sessoes SessaoStore
	Salas   SalaStore
}

func NewSessaoHandler(sessoes SessaoStore, salas SalaStore) *SessaoHandler {
	return &SessaoHandler{Sessoes: sessoes, Salas: salas}
}

// comPrecos attaches the derived price table to a sessao read from the store.
func comPrecos(s model.Sessao) model.Sessao {
	precos := model.CalcularPrecos(s.ValorIngressoBase)
	s.Precos = &precos
	return s
}

// Listar handles GET /api/sessoes.  Every item carries its sala and the
// derived price table.
func (h *SessaoHandler) Listar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	sessoes, err := h.Sessoes.Listar(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao listar sessoes"})
	}
	out := make([]model.Sessao, 0, len(sessoes))
	for _, s := range sessoes {
		out = append(out, comPrecos(s))
	}
	return c.JSON(http.StatusOK, out)
}

// Buscar handles GET /api/sessoes/:id.
func (h *SessaoHandler) Buscar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	s, err := h.Sessoes.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessaoNaoEncontrada) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Sessao nao encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao buscar sessao"})
	}
	return c.JSON(http.StatusOK, comPrecos(s))
}

// Criar handles POST /api/sessoes.  The referenced sala must exist.
func (h *SessaoHandler) Criar(c echo.Context) error {
	body, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados invalidos"})
	}
	if v := schema.Sessao.Validar(body); len(v) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v[0]})
	}
	horario, err := schema.ParseDataHora(body["horario_inicio"].(string))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": schema.MsgHorarioFormato})
	}
	salaID := uint64(body["sala_id"].(float64))

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Salas.BuscarPorID(ctx, salaID); err != nil {
		if errors.Is(err, repository.ErrSalaNaoEncontrada) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Sala nao encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao criar sessao"})
	}

	s, err := h.Sessoes.Criar(ctx, body["filme"].(string), horario, body["valor_ingresso_base"].(float64), salaID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao criar sessao"})
	}
	return c.JSON(http.StatusCreated, comPrecos(s))
}

// Atualizar handles PUT /api/sessoes/:id.  Both the sessao and the new sala
// must exist.
func (h *SessaoHandler) Atualizar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}
	body, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados invalidos"})
	}
	if v := schema.Sessao.Validar(body); len(v) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v[0]})
	}
	horario, err := schema.ParseDataHora(body["horario_inicio"].(string))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": schema.MsgHorarioFormato})
	}
	salaID := uint64(body["sala_id"].(float64))

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Sessoes.BuscarPorID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSessaoNaoEncontrada) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Sessao nao encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar sessao"})
	}
	if _, err := h.Salas.BuscarPorID(ctx, salaID); err != nil {
		if errors.Is(err, repository.ErrSalaNaoEncontrada) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Sala nao encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar sessao"})
	}

	if err := h.Sessoes.Atualizar(ctx, id, body["filme"].(string), horario, body["valor_ingresso_base"].(float64), salaID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar sessao"})
	}
	s, err := h.Sessoes.BuscarPorID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar sessao"})
	}
	return c.JSON(http.StatusOK, comPrecos(s))
}

// Excluir handles DELETE /api/sessoes/:id.
func (h *SessaoHandler) Excluir(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Sessoes.Excluir(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSessaoNaoEncontrada) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Sessao nao encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao excluir sessao"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Sessao excluida com sucesso"})
}
