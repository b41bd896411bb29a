package model

import "time"

// Categorias lists the accepted product categories, in the order they are
// reported in validation messages.
var Categorias = []string{"Pipoca", "Bebida", "Doce", "Combo", "Outros"}

// Produto represents a concession product in the `produtos` table.
type Produto struct {
	ID        uint64    `json:"id"`        // produtos.id
	Nome      string    `json:"nome"`      // produtos.nome
	Categoria string    `json:"categoria"` // produtos.categoria (one of Categorias)
	Preco     float64   `json:"preco"`     // produtos.preco
	Estoque   int       `json:"estoque"`   // produtos.estoque (never negative)
	CreatedAt time.Time `json:"createdAt"` // produtos.created_at
	UpdatedAt time.Time `json:"updatedAt"` // produtos.updated_at
}
