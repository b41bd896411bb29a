package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/model"
)

var (
	// ErrSalaNaoEncontrada is returned when a sala lookup finds no row.
	ErrSalaNaoEncontrada = errors.New("sala nao encontrada")
	// ErrSalaComSessoes is returned when deleting a sala that sessoes still
	// reference (MySQL 1451).
	ErrSalaComSessoes = errors.New("sala possui sessoes cadastradas")
)

// SalaRepo provides access to the salas table.
type SalaRepo struct{ db *sql.DB }

func NewSalaRepo(db *sql.DB) *SalaRepo { return &SalaRepo{db: db} }

const colunasSala = "id, nome, capacidade, created_at, updated_at"

// Criar inserts a new sala and fills it with the stored record, timestamps
// included.
func (r *SalaRepo) Criar(ctx context.Context, s *model.Sala) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO salas (nome, capacidade) VALUES (?,?)", s.Nome, s.Capacidade)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	salva, err := r.BuscarPorID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*s = salva
	return nil
}

// BuscarPorID fetches a sala by primary key.
func (r *SalaRepo) BuscarPorID(ctx context.Context, id uint64) (model.Sala, error) {
	var s model.Sala
	err := r.db.QueryRowContext(ctx,
		"SELECT "+colunasSala+" FROM salas WHERE id=? LIMIT 1", id).
		Scan(&s.ID, &s.Nome, &s.Capacidade, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Sala{}, ErrSalaNaoEncontrada
	}
	return s, err
}

// Listar returns every sala ordered by id.
func (r *SalaRepo) Listar(ctx context.Context) ([]model.Sala, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+colunasSala+" FROM salas ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Sala
	for rows.Next() {
		var s model.Sala
		if err := rows.Scan(&s.ID, &s.Nome, &s.Capacidade, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Atualizar persists nome and capacidade for an existing sala.
func (r *SalaRepo) Atualizar(ctx context.Context, id uint64, nome string, capacidade int) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE salas SET nome=?, capacidade=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		nome, capacidade, id)
	return err
}

// Excluir removes a sala.  Deleting a sala referenced by sessoes maps to
// ErrSalaComSessoes; deleting a missing sala maps to ErrSalaNaoEncontrada.
func (r *SalaRepo) Excluir(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM salas WHERE id=?", id)
	if err != nil {
		if isRestricaoFK(err) {
			return ErrSalaComSessoes
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSalaNaoEncontrada
	}
	return nil
}
