package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/config"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/model"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/queue"
	"github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/repository"
)

// In-memory store doubles.  They honour the same sentinel errors the SQL
// repositories return, so handlers cannot tell them apart.

type fakeUsuarios struct {
	seq   uint64
	itens map[uint64]model.Usuario
}

func newFakeUsuarios() *fakeUsuarios {
	return &fakeUsuarios{itens: map[uint64]model.Usuario{}}
}

func (f *fakeUsuarios) Criar(_ context.Context, nome, email, senhaHash string) (model.Usuario, error) {
	for _, u := range f.itens {
		if u.Email == email {
			return model.Usuario{}, repository.ErrEmailExiste
		}
	}
	f.seq++
	now := time.Now().UTC()
	u := model.Usuario{ID: f.seq, Nome: nome, Email: email, Senha: senhaHash, CreatedAt: now, UpdatedAt: now}
	f.itens[u.ID] = u
	return u, nil
}

func (f *fakeUsuarios) BuscarPorID(_ context.Context, id uint64) (model.Usuario, error) {
	u, ok := f.itens[id]
	if !ok {
		return model.Usuario{}, repository.ErrUsuarioNaoEncontrado
	}
	return u, nil
}

func (f *fakeUsuarios) BuscarPorEmail(_ context.Context, email string) (model.Usuario, error) {
	for _, u := range f.itens {
		if u.Email == email {
			return u, nil
		}
	}
	return model.Usuario{}, repository.ErrUsuarioNaoEncontrado
}

func (f *fakeUsuarios) Listar(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(f.itens))
	for _, u := range f.itens {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUsuarios) Atualizar(_ context.Context, id uint64, nome, email, senhaHash string) error {
	u, ok := f.itens[id]
	if !ok {
		return repository.ErrUsuarioNaoEncontrado
	}
	for _, outro := range f.itens {
		if outro.ID != id && outro.Email == email {
			return repository.ErrEmailExiste
		}
	}
	u.Nome, u.Email = nome, email
	if senhaHash != "" {
		u.Senha = senhaHash
	}
	u.UpdatedAt = time.Now().UTC()
	f.itens[id] = u
	return nil
}

func (f *fakeUsuarios) Excluir(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrUsuarioNaoEncontrado
	}
	delete(f.itens, id)
	return nil
}

type fakeSalas struct {
	seq        uint64
	itens      map[uint64]model.Sala
	comSessoes map[uint64]bool // salas that block deletion
}

func newFakeSalas() *fakeSalas {
	return &fakeSalas{itens: map[uint64]model.Sala{}, comSessoes: map[uint64]bool{}}
}

func (f *fakeSalas) Criar(_ context.Context, s *model.Sala) error {
	f.seq++
	s.ID = f.seq
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	f.itens[s.ID] = *s
	return nil
}

func (f *fakeSalas) BuscarPorID(_ context.Context, id uint64) (model.Sala, error) {
	s, ok := f.itens[id]
	if !ok {
		return model.Sala{}, repository.ErrSalaNaoEncontrada
	}
	return s, nil
}

func (f *fakeSalas) Listar(_ context.Context) ([]model.Sala, error) {
	out := make([]model.Sala, 0, len(f.itens))
	for _, s := range f.itens {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSalas) Atualizar(_ context.Context, id uint64, nome string, capacidade int) error {
	s, ok := f.itens[id]
	if !ok {
		return repository.ErrSalaNaoEncontrada
	}
	s.Nome, s.Capacidade = nome, capacidade
	s.UpdatedAt = time.Now().UTC()
	f.itens[id] = s
	return nil
}

func (f *fakeSalas) Excluir(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrSalaNaoEncontrada
	}
	if f.comSessoes[id] {
		return repository.ErrSalaComSessoes
	}
	delete(f.itens, id)
	return nil
}

type fakeSessoes struct {
	seq   uint64
	itens map[uint64]model.Sessao
	salas *fakeSalas
}

func newFakeSessoes(salas *fakeSalas) *fakeSessoes {
	return &fakeSessoes{itens: map[uint64]model.Sessao{}, salas: salas}
}

func (f *fakeSessoes) comSala(s model.Sessao) model.Sessao {
	if sala, ok := f.salas.itens[s.SalaID]; ok {
		s.Sala = &sala
	}
	return s
}

func (f *fakeSessoes) Criar(_ context.Context, filme string, horarioInicio time.Time, valorBase float64, salaID uint64) (model.Sessao, error) {
	f.seq++
	now := time.Now().UTC()
	s := model.Sessao{
		ID: f.seq, Filme: filme, HorarioInicio: horarioInicio,
		ValorIngressoBase: valorBase, SalaID: salaID,
		CreatedAt: now, UpdatedAt: now,
	}
	f.itens[s.ID] = s
	f.salas.comSessoes[salaID] = true
	return f.comSala(s), nil
}

func (f *fakeSessoes) BuscarPorID(_ context.Context, id uint64) (model.Sessao, error) {
	s, ok := f.itens[id]
	if !ok {
		return model.Sessao{}, repository.ErrSessaoNaoEncontrada
	}
	return f.comSala(s), nil
}

func (f *fakeSessoes) Listar(_ context.Context) ([]model.Sessao, error) {
	out := make([]model.Sessao, 0, len(f.itens))
	for _, s := range f.itens {
		out = append(out, f.comSala(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HorarioInicio.Before(out[j].HorarioInicio) })
	return out, nil
}

func (f *fakeSessoes) Atualizar(_ context.Context, id uint64, filme string, horarioInicio time.Time, valorBase float64, salaID uint64) error {
	s, ok := f.itens[id]
	if !ok {
		return repository.ErrSessaoNaoEncontrada
	}
	s.Filme, s.HorarioInicio, s.ValorIngressoBase, s.SalaID = filme, horarioInicio, valorBase, salaID
	s.UpdatedAt = time.Now().UTC()
	f.itens[id] = s
	return nil
}

func (f *fakeSessoes) Excluir(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrSessaoNaoEncontrada
	}
	delete(f.itens, id)
	return nil
}

type fakeProdutos struct {
	seq   uint64
	itens map[uint64]model.Produto
}

func newFakeProdutos() *fakeProdutos {
	return &fakeProdutos{itens: map[uint64]model.Produto{}}
}

func (f *fakeProdutos) Criar(_ context.Context, p *model.Produto) error {
	f.seq++
	p.ID = f.seq
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	f.itens[p.ID] = *p
	return nil
}

func (f *fakeProdutos) BuscarPorID(_ context.Context, id uint64) (model.Produto, error) {
	p, ok := f.itens[id]
	if !ok {
		return model.Produto{}, repository.ErrProdutoNaoEncontrado
	}
	return p, nil
}

func (f *fakeProdutos) Listar(_ context.Context) ([]model.Produto, error) {
	out := make([]model.Produto, 0, len(f.itens))
	for _, p := range f.itens {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProdutos) Atualizar(_ context.Context, id uint64, nome, categoria string, preco float64, estoque int) error {
	p, ok := f.itens[id]
	if !ok {
		return repository.ErrProdutoNaoEncontrado
	}
	p.Nome, p.Categoria, p.Preco, p.Estoque = nome, categoria, preco, estoque
	p.UpdatedAt = time.Now().UTC()
	f.itens[id] = p
	return nil
}

func (f *fakeProdutos) AjustarEstoque(_ context.Context, id uint64, quantidade int) (model.Produto, error) {
	p, ok := f.itens[id]
	if !ok {
		return model.Produto{}, repository.ErrProdutoNaoEncontrado
	}
	if p.Estoque+quantidade < 0 {
		return model.Produto{}, repository.ErrEstoqueInsuficiente
	}
	p.Estoque += quantidade
	p.UpdatedAt = time.Now().UTC()
	f.itens[id] = p
	return p, nil
}

func (f *fakeProdutos) Excluir(_ context.Context, id uint64) error {
	if _, ok := f.itens[id]; !ok {
		return repository.ErrProdutoNaoEncontrado
	}
	delete(f.itens, id)
	return nil
}

// fakeEventos records published events instead of talking to a broker.
type fakeEventos struct {
	registros []queue.UsuarioRegistrado
	ajustes   []queue.EstoqueAjustado
}

func (f *fakeEventos) UsuarioRegistrado(_ context.Context, ev queue.UsuarioRegistrado) {
	f.registros = append(f.registros, ev)
}

func (f *fakeEventos) EstoqueAjustado(_ context.Context, ev queue.EstoqueAjustado) {
	f.ajustes = append(f.ajustes, ev)
}

// Request plumbing shared by the handler tests.

func testConfig() config.Config {
	return config.Config{
		Env:         "dev",
		Port:        "8080",
		JWTSecret:   "unit-test-secret",
		TokenTTLMin: 60,
		BcryptCost:  4,
	}
}

func newJSONContext(t *testing.T, method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
