package handler

// Handlers depend on the store and publisher behaviour they consume, not on
// the concrete repository types, so tests can substitute in-memory doubles.
// The repositories in internal/repository satisfy these interfaces.

import (
	"context"
	"time"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/model"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/queue"
)

// UsuarioStore is the persistence surface for user accounts.
type UsuarioStore interface {
	Criar(ctx context.Context, nome, email, senhaHash string) (model.Usuario, error)
	BuscarPorID(ctx context.Context, id uint64) (model.Usuario, error)
	BuscarPorEmail(ctx context.Context, email string) (model.Usuario, error)
	Listar(ctx context.Context) ([]model.Usuario, error)
	Atualizar(ctx context.Context, id uint64, nome, email, senhaHash string) error
	Excluir(ctx context.Context, id uint64) error
}

// SalaStore is the persistence surface for screening rooms.
type SalaStore interface {
	Criar(ctx context.Context, s *model.Sala) error
	BuscarPorID(ctx context.Context, id uint64) (model.Sala, error)
	Listar(ctx context.Context) ([]model.Sala, error)
	Atualizar(ctx context.Context, id uint64, nome string, capacidade int) error
	Excluir(ctx context.Context, id uint64) error
}

// SessaoStore is the persistence surface for screenings.
type SessaoStore interface {
	Criar(ctx context.Context, filme string, horarioInicio time.Time, valorBase float64, salaID uint64) (model.Sessao, error)
	BuscarPorID(ctx context.Context, id uint64) (model.Sessao, error)
	Listar(ctx context.Context) ([]model.Sessao, error)
	Atualizar(ctx context.Context, id uint64, filme string, horarioInicio time.Time, valorBase float64, salaID uint64) error
	Excluir(ctx context.Context, id uint64) error
}

// ProdutoStore is the persistence surface for concession products.
type ProdutoStore interface {
	Criar(ctx context.Context, p *model.Produto) error
	BuscarPorID(ctx context.Context, id uint64) (model.Produto, error)
	Listar(ctx context.Context) ([]model.Produto, error)
	Atualizar(ctx context.Context, id uint64, nome, categoria string, preco float64, estoque int) error
	AjustarEstoque(ctx context.Context, id uint64, quantidade int) (model.Produto, error)
	Excluir(ctx context.Context, id uint64) error
}

// Eventos is the broker surface.  Implementations must be best effort; a
// nil Eventos disables publishing entirely.
type Eventos interface {
	UsuarioRegistrado(ctx context.Context, ev queue.UsuarioRegistrado)
	EstoqueAjustado(ctx context.Context, ev queue.EstoqueAjustado)
}
