package model

import "time"

// Usuario represents a row in the `usuarios` table.  Email is unique and
// stored exactly as sent.  The password hash is kept out of every JSON
// response via the `-` tag; handlers never copy it into a response type.
type Usuario struct {
	ID        uint64    `json:"id"`        // usuarios.id
	Nome      string    `json:"nome"`      // usuarios.nome
	Email     string    `json:"email"`     // usuarios.email
	Senha     string    `json:"-"`         // usuarios.senha (bcrypt hash)
	CreatedAt time.Time `json:"createdAt"` // usuarios.created_at
	UpdatedAt time.Time `json:"updatedAt"` // usuarios.updated_at
}
