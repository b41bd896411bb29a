package model

import "time"

// Sala represents a screening room in the `salas` table.  Capacidade is the
// total number of seats; sessions reference a sala through sessoes.sala_id.
type Sala struct {
	ID         uint64    `json:"id"`         // salas.id
	Nome       string    `json:"nome"`       // salas.nome (ex: "Sala 1", "IMAX")
	Capacidade int       `json:"capacidade"` // salas.capacidade
	CreatedAt  time.Time `json:"createdAt"`  // salas.created_at
	UpdatedAt  time.Time `json:"updatedAt"`  // salas.updated_at
}
