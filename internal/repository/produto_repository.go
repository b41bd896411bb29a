package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/model"
)

var (
	// ErrProdutoNaoEncontrado is returned when a produto lookup finds no row.
	ErrProdutoNaoEncontrado = errors.New("produto nao encontrado")
	// ErrEstoqueInsuficiente is returned when a stock adjustment would make
	// estoque negative.  The row is left untouched.
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
)

// ProdutoRepo provides access to the produtos table.
type ProdutoRepo struct{ db *sql.DB }

func NewProdutoRepo(db *sql.DB) *ProdutoRepo { return &ProdutoRepo{db: db} }

const colunasProduto = "id, nome, categoria, preco, estoque, created_at, updated_at"

// Criar inserts a new produto and fills it with the stored record.
func (r *ProdutoRepo) Criar(ctx context.Context, p *model.Produto) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO produtos (nome, categoria, preco, estoque) VALUES (?,?,?,?)",
		p.Nome, p.Categoria, p.Preco, p.Estoque)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	salvo, err := r.BuscarPorID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*p = salvo
	return nil
}

// BuscarPorID fetches a produto by primary key.
func (r *ProdutoRepo) BuscarPorID(ctx context.Context, id uint64) (model.Produto, error) {
	var p model.Produto
	err := r.db.QueryRowContext(ctx,
		"SELECT "+colunasProduto+" FROM produtos WHERE id=? LIMIT 1", id).
		Scan(&p.ID, &p.Nome, &p.Categoria, &p.Preco, &p.Estoque, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Produto{}, ErrProdutoNaoEncontrado
	}
	return p, err
}

// Listar returns every produto ordered by id.
func (r *ProdutoRepo) Listar(ctx context.Context) ([]model.Produto, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+colunasProduto+" FROM produtos ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Produto
	for rows.Next() {
		var p model.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Categoria, &p.Preco, &p.Estoque, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Atualizar persists the mutable fields of an existing produto.
func (r *ProdutoRepo) Atualizar(ctx context.Context, id uint64, nome, categoria string, preco float64, estoque int) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE produtos SET nome=?, categoria=?, preco=?, estoque=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		nome, categoria, preco, estoque, id)
	return err
}

// AjustarEstoque applies a signed delta to estoque in a single conditional
// update, so a concurrent adjustment can never drive the stock negative.
// Returns the updated produto, ErrEstoqueInsuficiente when the delta would
// cross zero, or ErrProdutoNaoEncontrado.
func (r *ProdutoRepo) AjustarEstoque(ctx context.Context, id uint64, quantidade int) (model.Produto, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE produtos SET estoque = estoque + ?, updated_at=CURRENT_TIMESTAMP WHERE id=? AND estoque + ? >= 0",
		quantidade, id, quantidade)
	if err != nil {
		return model.Produto{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Missing produto, a rejected delta, or an update that changed no
		// column values; re-read to tell them apart.
		p, err := r.BuscarPorID(ctx, id)
		if err != nil {
			return model.Produto{}, err
		}
		if p.Estoque+quantidade < 0 {
			return model.Produto{}, ErrEstoqueInsuficiente
		}
		return p, nil
	}
	return r.BuscarPorID(ctx, id)
}

// Excluir removes a produto.  Returns ErrProdutoNaoEncontrado when no row
// was deleted.
func (r *ProdutoRepo) Excluir(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM produtos WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProdutoNaoEncontrado
	}
	return nil
}
