package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/model"
)

// ErrSessaoNaoEncontrada is returned when a sessao lookup finds no row.
var ErrSessaoNaoEncontrada = errors.New("sessao nao encontrada")

// SessaoRepo provides access to the sessoes table.  Reads always join the
// owning sala so responses can embed it without a second round trip.
type SessaoRepo struct{ db *sql.DB }

func NewSessaoRepo(db *sql.DB) *SessaoRepo { return &SessaoRepo{db: db} }

const selectSessaoComSala = `SELECT s.id, s.filme, s.horario_inicio, s.valor_ingresso_base, s.sala_id,
       s.created_at, s.updated_at,
       sa.id, sa.nome, sa.capacidade, sa.created_at, sa.updated_at
  FROM sessoes s
  JOIN salas sa ON sa.id = s.sala_id`

func scanSessaoComSala(scan func(dest ...interface{}) error) (model.Sessao, error) {
	var s model.Sessao
	var sala model.Sala
	err := scan(&s.ID, &s.Filme, &s.HorarioInicio, &s.ValorIngressoBase, &s.SalaID,
		&s.CreatedAt, &s.UpdatedAt,
		&sala.ID, &sala.Nome, &sala.Capacidade, &sala.CreatedAt, &sala.UpdatedAt)
	if err != nil {
		return model.Sessao{}, err
	}
	s.Sala = &sala
	return s, nil
}

// Criar inserts a new sessao and returns the stored record with its sala.
func (r *SessaoRepo) Criar(ctx context.Context, filme string, horarioInicio time.Time, valorBase float64, salaID uint64) (model.Sessao, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO sessoes (filme, horario_inicio, valor_ingresso_base, sala_id) VALUES (?,?,?,?)",
		filme, horarioInicio, valorBase, salaID)
	if err != nil {
		return model.Sessao{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Sessao{}, err
	}
	return r.BuscarPorID(ctx, uint64(id))
}

// BuscarPorID fetches a sessao with its sala by primary key.
func (r *SessaoRepo) BuscarPorID(ctx context.Context, id uint64) (model.Sessao, error) {
	row := r.db.QueryRowContext(ctx, selectSessaoComSala+" WHERE s.id=? LIMIT 1", id)
	s, err := scanSessaoComSala(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Sessao{}, ErrSessaoNaoEncontrada
	}
	return s, err
}

// Listar returns every sessao with its sala, earliest horario first.
func (r *SessaoRepo) Listar(ctx context.Context) ([]model.Sessao, error) {
	rows, err := r.db.QueryContext(ctx, selectSessaoComSala+" ORDER BY s.horario_inicio ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Sessao
	for rows.Next() {
		s, err := scanSessaoComSala(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Atualizar persists the mutable fields of an existing sessao.
func (r *SessaoRepo) Atualizar(ctx context.Context, id uint64, filme string, horarioInicio time.Time, valorBase float64, salaID uint64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE sessoes SET filme=?, horario_inicio=?, valor_ingresso_base=?, sala_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		filme, horarioInicio, valorBase, salaID, id)
	return err
}

// Excluir removes a sessao.  Returns ErrSessaoNaoEncontrada when no row was
// deleted.
func (r *SessaoRepo) Excluir(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sessoes WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessaoNaoEncontrada
	}
	return nil
}
