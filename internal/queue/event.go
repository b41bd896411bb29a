// Package queue defines the message payloads published to the broker.
package queue

// UsuarioRegistrado is published after a successful registration so
// downstream consumers (welcome mail, analytics) can react without querying
// the primary database.  It never carries the password or its hash.
type UsuarioRegistrado struct {
	UsuarioID    uint64 `json:"usuario_id"`
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	RegistradoEm string `json:"registrado_em"`
}

// EstoqueAjustado is published after a concession stock adjustment, carrying
// the applied delta and the resulting level.
type EstoqueAjustado struct {
	ProdutoID    uint64 `json:"produto_id"`
	Nome         string `json:"nome"`
	Quantidade   int    `json:"quantidade"`
	EstoqueAtual int    `json:"estoque_atual"`
	AjustadoEm   string `json:"ajustado_em"`
}
