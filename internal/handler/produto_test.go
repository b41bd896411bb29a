package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criarProduto(t *testing.T, h *ProdutoHandler, payload map[string]interface{}) uint64 {
	t.Helper()
	c, rec := newJSONContext(t, http.MethodPost, "/api/produtos", payload)
	require.NoError(t, h.Criar(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	return uint64(decodeBody(t, rec)["id"].(float64))
}

func TestProdutoCriarEstoquePadraoZero(t *testing.T) {
	h := NewProdutoHandler(newFakeProdutos(), nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/produtos", map[string]interface{}{
		"nome": "Pipoca grande", "categoria": "Pipoca", "preco": 25.0,
	})
	require.NoError(t, h.Criar(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(0), decodeBody(t, rec)["estoque"])
}

func TestProdutoCriarCategoriaInvalida(t *testing.T) {
	h := NewProdutoHandler(newFakeProdutos(), nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/produtos", map[string]interface{}{
		"nome": "Sorvete", "categoria": "Gelados", "preco": 12.0,
	})
	require.NoError(t, h.Criar(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Categoria deve ser: Pipoca, Bebida, Doce, Combo ou Outros", decodeBody(t, rec)["message"])
}

func TestProdutoAtualizarMantemEstoqueQuandoOmitido(t *testing.T) {
	produtos := newFakeProdutos()
	h := NewProdutoHandler(produtos, nil)
	id := criarProduto(t, h, map[string]interface{}{
		"nome": "Refrigerante", "categoria": "Bebida", "preco": 8.0, "estoque": 50,
	})

	c, rec := newJSONContext(t, http.MethodPut, "/api/produtos/1", map[string]interface{}{
		"nome": "Refrigerante lata", "categoria": "Bebida", "preco": 9.0,
	})
	require.NoError(t, h.Atualizar(withID(c, "1")))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Refrigerante lata", body["nome"])
	assert.Equal(t, float64(50), body["estoque"])
	assert.Equal(t, 50, produtos.itens[id].Estoque)
}

func TestProdutoAjustarEstoque(t *testing.T) {
	produtos := newFakeProdutos()
	eventos := &fakeEventos{}
	h := NewProdutoHandler(produtos, eventos)
	criarProduto(t, h, map[string]interface{}{
		"nome": "Chocolate", "categoria": "Doce", "preco": 7.5, "estoque": 10,
	})

	c, rec := newJSONContext(t, http.MethodPatch, "/api/produtos/1/estoque", map[string]interface{}{
		"quantidade": -4,
	})
	require.NoError(t, h.AjustarEstoque(withID(c, "1")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(6), decodeBody(t, rec)["estoque"])

	require.Len(t, eventos.ajustes, 1)
	assert.Equal(t, -4, eventos.ajustes[0].Quantidade)
	assert.Equal(t, 6, eventos.ajustes[0].EstoqueAtual)
}

func TestProdutoAjustarEstoqueInsuficiente(t *testing.T) {
	produtos := newFakeProdutos()
	h := NewProdutoHandler(produtos, nil)
	id := criarProduto(t, h, map[string]interface{}{
		"nome": "Chocolate", "categoria": "Doce", "preco": 7.5, "estoque": 3,
	})

	c, rec := newJSONContext(t, http.MethodPatch, "/api/produtos/1/estoque", map[string]interface{}{
		"quantidade": -5,
	})
	require.NoError(t, h.AjustarEstoque(withID(c, "1")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Estoque insuficiente", decodeBody(t, rec)["message"])
	// o estoque nao muda
	assert.Equal(t, 3, produtos.itens[id].Estoque)
}

func TestProdutoAjustarEstoqueProdutoInexistente(t *testing.T) {
	h := NewProdutoHandler(newFakeProdutos(), nil)

	c, rec := newJSONContext(t, http.MethodPatch, "/api/produtos/9/estoque", map[string]interface{}{
		"quantidade": 1,
	})
	require.NoError(t, h.AjustarEstoque(withID(c, "9")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Produto nao encontrado", decodeBody(t, rec)["message"])
}

func TestProdutoAjustarEstoqueQuantidadeFracionada(t *testing.T) {
	h := NewProdutoHandler(newFakeProdutos(), nil)

	c, rec := newJSONContext(t, http.MethodPatch, "/api/produtos/1/estoque", map[string]interface{}{
		"quantidade": 1.5,
	})
	require.NoError(t, h.AjustarEstoque(withID(c, "1")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Quantidade deve ser um numero inteiro", decodeBody(t, rec)["message"])
}

func TestProdutoExcluir(t *testing.T) {
	produtos := newFakeProdutos()
	h := NewProdutoHandler(produtos, nil)
	id := criarProduto(t, h, map[string]interface{}{
		"nome": "Combo familia", "categoria": "Combo", "preco": 55.0,
	})

	c, rec := newJSONContext(t, http.MethodDelete, "/api/produtos/1", nil)
	require.NoError(t, h.Excluir(withID(c, "1")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Produto excluido com sucesso", decodeBody(t, rec)["message"])
	assert.NotContains(t, produtos.itens, id)
}

func TestProdutoListarVazioRetornaArray(t *testing.T) {
	h := NewProdutoHandler(newFakeProdutos(), nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/produtos", nil)
	require.NoError(t, h.Listar(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
