package model

import (
	"strconv"
	"time"
)

// Sessao represents a movie screening in the `sessoes` table.  SalaID is a
// required foreign key into salas; Sala carries the joined room on reads.
// Precos is derived from ValorIngressoBase on every read and never persisted.
type Sessao struct {
	ID                uint64    `json:"id"`                  // sessoes.id
	Filme             string    `json:"filme"`               // sessoes.filme
	HorarioInicio     time.Time `json:"horario_inicio"`      // sessoes.horario_inicio
	ValorIngressoBase float64   `json:"valor_ingresso_base"` // sessoes.valor_ingresso_base
	SalaID            uint64    `json:"sala_id"`             // sessoes.sala_id (FK -> salas.id)
	CreatedAt         time.Time `json:"createdAt"`           // sessoes.created_at
	UpdatedAt         time.Time `json:"updatedAt"`           // sessoes.updated_at
	Sala              *Sala     `json:"Sala,omitempty"`      // joined room, eager on reads
	Precos            *Precos   `json:"precos,omitempty"`    // derived price table
}

// Precos is the derived ticket price table for a session.  Values are fixed
// two-decimal strings: inteira is the stored base price, meia is half of it
// and cortesia is always free.
type Precos struct {
	Inteira  string `json:"inteira"`
	Meia     string `json:"meia"`
	Cortesia string `json:"cortesia"`
}

// CalcularPrecos derives the price table from a base ticket price.
func CalcularPrecos(valorBase float64) Precos {
	return Precos{
		Inteira:  strconv.FormatFloat(valorBase, 'f', 2, 64),
		Meia:     strconv.FormatFloat(valorBase*0.5, 'f', 2, 64),
		Cortesia: "0.00",
	}
}
