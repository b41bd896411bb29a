package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/model"
)

var (
	// ErrEmailExiste is returned when an insert or update collides with an
	// existing usuarios.email.
	ErrEmailExiste = errors.New("email ja cadastrado")
	// ErrUsuarioNaoEncontrado is returned when a usuario lookup finds no row.
	ErrUsuarioNaoEncontrado = errors.New("usuario nao encontrado")
)

// UsuarioRepo provides access to the usuarios table.
type UsuarioRepo struct{ db *sql.DB }

func NewUsuarioRepo(db *sql.DB) *UsuarioRepo { return &UsuarioRepo{db: db} }

const colunasUsuario = "id, nome, email, senha, created_at, updated_at"

func scanUsuario(row *sql.Row) (model.Usuario, error) {
	var u model.Usuario
	err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.Senha, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Criar inserts a new usuario with an already-hashed password and returns
// the stored record.  Email collisions map to ErrEmailExiste.
func (r *UsuarioRepo) Criar(ctx context.Context, nome, email, senhaHash string) (model.Usuario, error) {
	email = strings.TrimSpace(email)
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO usuarios (nome, email, senha) VALUES (?,?,?)",
		nome, email, senhaHash)
	if err != nil {
		if isDuplicado(err) {
			return model.Usuario{}, ErrEmailExiste
		}
		return model.Usuario{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Usuario{}, err
	}
	return r.BuscarPorID(ctx, uint64(id))
}

// BuscarPorID fetches a usuario by primary key.
func (r *UsuarioRepo) BuscarPorID(ctx context.Context, id uint64) (model.Usuario, error) {
	u, err := scanUsuario(r.db.QueryRowContext(ctx,
		"SELECT "+colunasUsuario+" FROM usuarios WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Usuario{}, ErrUsuarioNaoEncontrado
	}
	return u, err
}

// BuscarPorEmail fetches a usuario by email, hash included, for login and
// uniqueness checks.  Returns ErrUsuarioNaoEncontrado when absent.
func (r *UsuarioRepo) BuscarPorEmail(ctx context.Context, email string) (model.Usuario, error) {
	u, err := scanUsuario(r.db.QueryRowContext(ctx,
		"SELECT "+colunasUsuario+" FROM usuarios WHERE email=? LIMIT 1",
		strings.TrimSpace(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Usuario{}, ErrUsuarioNaoEncontrado
	}
	return u, err
}

// Listar returns every usuario ordered by id.
func (r *UsuarioRepo) Listar(ctx context.Context) ([]model.Usuario, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+colunasUsuario+" FROM usuarios ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Usuario
	for rows.Next() {
		var u model.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.Senha, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Atualizar updates nome and email, and the password hash when senhaHash is
// non-empty.  Email collisions map to ErrEmailExiste.
func (r *UsuarioRepo) Atualizar(ctx context.Context, id uint64, nome, email, senhaHash string) error {
	var err error
	if senhaHash != "" {
		_, err = r.db.ExecContext(ctx,
			"UPDATE usuarios SET nome=?, email=?, senha=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
			nome, strings.TrimSpace(email), senhaHash, id)
	} else {
		_, err = r.db.ExecContext(ctx,
			"UPDATE usuarios SET nome=?, email=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
			nome, strings.TrimSpace(email), id)
	}
	if isDuplicado(err) {
		return ErrEmailExiste
	}
	return err
}

// Excluir removes a usuario.  Returns ErrUsuarioNaoEncontrado when no row
// was deleted.
func (r *UsuarioRepo) Excluir(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM usuarios WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUsuarioNaoEncontrado
	}
	return nil
}
