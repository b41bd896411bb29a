package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/model"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/queue"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/repository"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/schema"
)

// ProdutoHandler implements the CRUD and stock endpoints under
// /api/produtos.
type ProdutoHandler struct {
	Produtos ProdutoStore
	Eventos  Eventos
}

func NewProdutoHandler(p ProdutoStore, ev Eventos) *ProdutoHandler {
	return &ProdutoHandler{Produtos: p, Eventos: ev}
}

// Listar handles GET /api/produtos.
func (h *ProdutoHandler) Listar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	produtos, err := h.Produtos.Listar(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao listar produtos"})
	}
	if produtos == nil {
		produtos = []model.Produto{}
	}
	return c.JSON(http.StatusOK, produtos)
}

// Buscar handles GET /api/produtos/:id.
func (h *ProdutoHandler) Buscar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Produtos.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProdutoNaoEncontrado) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Produto nao encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao buscar produto"})
	}
	return c.JSON(http.StatusOK, p)
}

// Criar handles POST /api/produtos.  Estoque defaults to zero when omitted.
func (h *ProdutoHandler) Criar(c echo.Context) error {
	body, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados invalidos"})
	}
	if v := schema.Produto.Validar(body); len(v) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v[0]})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p := model.Produto{
		Nome:      body["nome"].(string),
		Categoria: body["categoria"].(string),
		Preco:     body["preco"].(float64),
	}
	if estoque, ok := body["estoque"].(float64); ok {
		p.Estoque = int(estoque)
	}
	if err := h.Produtos.Criar(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao criar produto"})
	}
	return c.JSON(http.StatusCreated, p)
}

// Atualizar handles PUT /api/produtos/:id.
func (h *ProdutoHandler) Atualizar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}
	body, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados invalidos"})
	}
	if v := schema.Produto.Validar(body); len(v) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v[0]})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	atual, err := h.Produtos.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProdutoNaoEncontrado) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Produto nao encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar produto"})
	}

	estoque := atual.Estoque
	if v, ok := body["estoque"].(float64); ok {
		estoque = int(v)
	}
	if err := h.Produtos.Atualizar(ctx, id, body["nome"].(string), body["categoria"].(string), body["preco"].(float64), estoque); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar produto"})
	}
	p, err := h.Produtos.BuscarPorID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar produto"})
	}
	return c.JSON(http.StatusOK, p)
}

// AjustarEstoque handles PATCH /api/produtos/:id/estoque.  The body carries
// a signed quantidade delta; an adjustment that would leave the stock
// negative is rejected and the row untouched.
func (h *ProdutoHandler) AjustarEstoque(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}
	body, err := bindPayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados invalidos"})
	}
	if v := schema.AjusteEstoque.Validar(body); len(v) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v[0]})
	}
	quantidade := int(body["quantidade"].(float64))

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Produtos.AjustarEstoque(ctx, id, quantidade)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProdutoNaoEncontrado):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Produto nao encontrado"})
		case errors.Is(err, repository.ErrEstoqueInsuficiente):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Estoque insuficiente"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar estoque"})
		}
	}

	if h.Eventos != nil {
		h.Eventos.EstoqueAjustado(ctx, queue.EstoqueAjustado{
			ProdutoID:    p.ID,
			Nome:         p.Nome,
			Quantidade:   quantidade,
			EstoqueAtual: p.Estoque,
			AjustadoEm:   time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, p)
}

// Excluir handles DELETE /api/produtos/:id.
func (h *ProdutoHandler) Excluir(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "ID invalido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Produtos.Excluir(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProdutoNaoEncontrado) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Produto nao encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao excluir produto"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Produto excluido com sucesso"})
}
