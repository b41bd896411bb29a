package schema

import "github.com/VonJitor/App-Gerenciamento-Cinema-backend/internal/model"

// ptr builds the *float64 bounds used by numeric fields.
func ptr(v float64) *float64 { return &v }

// MsgHorarioFormato is shared by the sessao descriptor and the handlers that
// re-parse horario_inicio after validation, so both paths report the same
// violation.
const MsgHorarioFormato = "Horario de inicio deve estar no formato ISO 8601 (ex: 2024-12-25T14:30:00)"

// Registro validates POST /api/auth/register payloads.
var Registro = Schema{Campos: []Campo{
	{
		Nome: "nome", Tipo: TipoString, Obrigatorio: true, MinLen: 2, MaxLen: 100,
		Mensagens: Mensagens{
			Obrigatorio: "Nome eh obrigatorio",
			Tipo:        "Nome deve ser uma string",
			MinLen:      "Nome deve ter no minimo 2 caracteres",
			MaxLen:      "Nome deve ter no maximo 100 caracteres",
		},
	},
	{
		Nome: "email", Tipo: TipoString, Obrigatorio: true, MaxLen: 150, Formato: FormatoEmail,
		Mensagens: Mensagens{
			Obrigatorio: "Email eh obrigatorio",
			Tipo:        "Email deve ser uma string",
			MaxLen:      "Email deve ter no maximo 150 caracteres",
			Formato:     "Email invalido",
		},
	},
	{
		Nome: "senha", Tipo: TipoString, Obrigatorio: true, MinLen: 6, MaxLen: 50,
		Mensagens: Mensagens{
			Obrigatorio: "Senha eh obrigatoria",
			Tipo:        "Senha deve ser uma string",
			MinLen:      "Senha deve ter no minimo 6 caracteres",
			MaxLen:      "Senha deve ter no maximo 50 caracteres",
		},
	},
}}

// Login validates POST /api/auth/login payloads.
var Login = Schema{Campos: []Campo{
	{
		Nome: "email", Tipo: TipoString, Obrigatorio: true, Formato: FormatoEmail,
		Mensagens: Mensagens{
			Obrigatorio: "Email eh obrigatorio",
			Tipo:        "Email deve ser uma string",
			Formato:     "Email invalido",
		},
	},
	{
		Nome: "senha", Tipo: TipoString, Obrigatorio: true, MinLen: 1,
		Mensagens: Mensagens{
			Obrigatorio: "Senha eh obrigatoria",
			Tipo:        "Senha deve ser uma string",
			MinLen:      "Senha eh obrigatoria",
		},
	},
}}

// AtualizarUsuario validates PUT /api/usuarios/:id payloads.  Senha is
// optional; when present it is re-hashed by the handler.
var AtualizarUsuario = Schema{Campos: []Campo{
	{
		Nome: "nome", Tipo: TipoString, Obrigatorio: true, MinLen: 2, MaxLen: 100,
		Mensagens: Mensagens{
			Obrigatorio: "Nome eh obrigatorio",
			Tipo:        "Nome deve ter entre 2 e 100 caracteres",
			MinLen:      "Nome deve ter entre 2 e 100 caracteres",
			MaxLen:      "Nome deve ter entre 2 e 100 caracteres",
		},
	},
	{
		Nome: "email", Tipo: TipoString, Obrigatorio: true, Formato: FormatoEmail,
		Mensagens: Mensagens{
			Obrigatorio: "Email eh obrigatorio",
			Tipo:        "Email invalido",
			Formato:     "Email invalido",
		},
	},
	{
		Nome: "senha", Tipo: TipoString, MinLen: 6,
		Mensagens: Mensagens{
			Tipo:   "Senha deve ter no minimo 6 caracteres",
			MinLen: "Senha deve ter no minimo 6 caracteres",
		},
	},
}}

// Sala validates sala create and update payloads.
var Sala = Schema{Campos: []Campo{
	{
		Nome: "nome", Tipo: TipoString, Obrigatorio: true, MinLen: 1, MaxLen: 80,
		Mensagens: Mensagens{
			Obrigatorio: "Nome da sala eh obrigatorio",
			Tipo:        "Nome deve ser uma string",
			MinLen:      "Nome eh obrigatorio",
			MaxLen:      "Nome deve ter no maximo 80 caracteres",
		},
	},
	{
		Nome: "capacidade", Tipo: TipoInteiro, Obrigatorio: true, Min: ptr(1), Max: ptr(1000),
		Mensagens: Mensagens{
			Obrigatorio: "Capacidade eh obrigatoria",
			Tipo:        "Capacidade deve ser um numero inteiro",
			Min:         "Capacidade deve ser no minimo 1",
			Max:         "Capacidade deve ser no maximo 1000",
		},
	},
}}

// Sessao validates sessao create and update payloads.
var Sessao = Schema{Campos: []Campo{
	{
		Nome: "filme", Tipo: TipoString, Obrigatorio: true, MinLen: 1, MaxLen: 200,
		Mensagens: Mensagens{
			Obrigatorio: "Titulo do filme eh obrigatorio",
			Tipo:        "Filme deve ser uma string",
			MinLen:      "Titulo do filme eh obrigatorio",
			MaxLen:      "Titulo do filme deve ter no maximo 200 caracteres",
		},
	},
	{
		Nome: "horario_inicio", Tipo: TipoString, Obrigatorio: true, Formato: FormatoDataHora,
		Mensagens: Mensagens{
			Obrigatorio: "Horario de inicio eh obrigatorio",
			Tipo:        "Horario de inicio deve ser uma string",
			Formato:     MsgHorarioFormato,
		},
	},
	{
		Nome: "valor_ingresso_base", Tipo: TipoNumero, Obrigatorio: true, Min: ptr(0), Max: ptr(1000),
		Mensagens: Mensagens{
			Obrigatorio: "Valor do ingresso eh obrigatorio",
			Tipo:        "Valor do ingresso deve ser um numero",
			Min:         "Valor do ingresso nao pode ser negativo",
			Max:         "Valor do ingresso deve ser no maximo R$ 1000",
		},
	},
	{
		Nome: "sala_id", Tipo: TipoInteiro, Obrigatorio: true, Min: ptr(1),
		Mensagens: Mensagens{
			Obrigatorio: "Sala eh obrigatoria",
			Tipo:        "ID da sala deve ser um numero inteiro",
			Min:         "ID da sala invalido",
		},
	},
}}

// Produto validates produto create and update payloads.
var Produto = Schema{Campos: []Campo{
	{
		Nome: "nome", Tipo: TipoString, Obrigatorio: true, MinLen: 1, MaxLen: 100,
		Mensagens: Mensagens{
			Obrigatorio: "Nome do produto eh obrigatorio",
			Tipo:        "Nome deve ser uma string",
			MinLen:      "Nome do produto eh obrigatorio",
			MaxLen:      "Nome deve ter no maximo 100 caracteres",
		},
	},
	{
		Nome: "categoria", Tipo: TipoString, Obrigatorio: true, Enum: model.Categorias,
		Mensagens: Mensagens{
			Obrigatorio: "Categoria eh obrigatoria",
			Tipo:        "Categoria deve ser uma string",
			Enum:        "Categoria deve ser: Pipoca, Bebida, Doce, Combo ou Outros",
		},
	},
	{
		Nome: "preco", Tipo: TipoNumero, Obrigatorio: true, Min: ptr(0), Max: ptr(1000),
		Mensagens: Mensagens{
			Obrigatorio: "Preco eh obrigatorio",
			Tipo:        "Preco deve ser um numero",
			Min:         "Preco nao pode ser negativo",
			Max:         "Preco deve ser no maximo R$ 1000",
		},
	},
	{
		Nome: "estoque", Tipo: TipoInteiro, Min: ptr(0),
		Mensagens: Mensagens{
			Tipo: "Estoque deve ser um numero inteiro",
			Min:  "Estoque nao pode ser negativo",
		},
	},
}}

// AjusteEstoque validates PATCH /api/produtos/:id/estoque payloads.  The
// quantidade delta may be negative; the floor check happens at persist time
// against the current stock.
var AjusteEstoque = Schema{Campos: []Campo{
	{
		Nome: "quantidade", Tipo: TipoInteiro, Obrigatorio: true,
		Mensagens: Mensagens{
			Obrigatorio: "Quantidade eh obrigatoria",
			Tipo:        "Quantidade deve ser um numero inteiro",
		},
	},
}}
