// Package schema validates request payloads against declarative per-endpoint
// descriptors.  A descriptor is pure data: the ordered field list, each with
// a type, bounds and a message per constraint.  One generic routine
// interprets every descriptor, so endpoints never hand-roll validation code.
package schema

import (
	"fmt"
	"math"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Tipo is the JSON type expected for a field value.
type Tipo int

const (
	TipoString  Tipo = iota // JSON string
	TipoInteiro             // JSON number without fractional part
	TipoNumero              // any JSON number
)

// Formato is an additional string format constraint.
type Formato int

const (
	FormatoNenhum   Formato = iota
	FormatoEmail            // RFC 5322 address
	FormatoDataHora         // ISO 8601 timestamp, offset optional
)

// Mensagens holds the user-facing message for each constraint of a field.
// Only the messages for constraints the field actually declares are used.
type Mensagens struct {
	Obrigatorio string // field missing from payload
	Tipo        string // wrong JSON type
	MinLen      string // string shorter than MinLen
	MaxLen      string // string longer than MaxLen
	Min         string // number below Min
	Max         string // number above Max
	Enum        string // value outside Enum
	Formato     string // string fails Formato
}

// Campo describes one payload field.  Zero bounds are unbounded; nil Min/Max
// disable the numeric checks.
type Campo struct {
	Nome        string
	Tipo        Tipo
	Obrigatorio bool
	MinLen      int
	MaxLen      int
	Min         *float64
	Max         *float64
	Enum        []string
	Formato     Formato
	Mensagens   Mensagens
}

// Schema is the descriptor for one endpoint's payload.  Campos order defines
// the order violations are reported in; any payload key not declared here
// fails the whole payload.
type Schema struct {
	Campos []Campo
}

// Validar checks a decoded JSON object against the schema and returns the
// ordered list of violation messages, empty when the payload is valid.
// Declared fields are checked in declaration order; unknown keys are
// appended afterwards.
func (s Schema) Validar(payload map[string]interface{}) []string {
	var violacoes []string
	for _, c := range s.Campos {
		v, presente := payload[c.Nome]
		if !presente || v == nil {
			if c.Obrigatorio {
				violacoes = append(violacoes, c.Mensagens.Obrigatorio)
			}
			continue
		}
		if msg := c.validar(v); msg != "" {
			violacoes = append(violacoes, msg)
		}
	}

	declarados := make(map[string]bool, len(s.Campos))
	for _, c := range s.Campos {
		declarados[c.Nome] = true
	}
	for k := range payload {
		if !declarados[k] {
			violacoes = append(violacoes, fmt.Sprintf("Campo nao permitido: %s", k))
		}
	}
	return violacoes
}

// validar checks a single present value and returns the first violation
// message, or "" when the value satisfies every constraint.
func (c Campo) validar(v interface{}) string {
	switch c.Tipo {
	case TipoString:
		str, ok := v.(string)
		if !ok {
			return c.Mensagens.Tipo
		}
		return c.validarString(str)
	case TipoInteiro, TipoNumero:
		// encoding/json decodes every JSON number as float64.
		n, ok := v.(float64)
		if !ok {
			return c.Mensagens.Tipo
		}
		if c.Tipo == TipoInteiro && math.Trunc(n) != n {
			return c.Mensagens.Tipo
		}
		return c.validarNumero(n)
	}
	return ""
}

func (c Campo) validarString(str string) string {
	// ozzo rules treat "" as absent and skip it, but a present empty string
	// must still violate length, enum and format constraints.
	if str == "" {
		switch {
		case c.MinLen > 0:
			return c.Mensagens.MinLen
		case len(c.Enum) > 0:
			return c.Mensagens.Enum
		case c.Formato != FormatoNenhum:
			return c.Mensagens.Formato
		}
		return ""
	}

	// RuneLength, not Length: the bounds count characters, so a multibyte
	// name like "José" measures 4, not 5.
	var rules []validation.Rule
	if c.MinLen > 0 {
		rules = append(rules, validation.RuneLength(c.MinLen, 0).Error(c.Mensagens.MinLen))
	}
	if c.MaxLen > 0 {
		rules = append(rules, validation.RuneLength(0, c.MaxLen).Error(c.Mensagens.MaxLen))
	}
	if len(c.Enum) > 0 {
		vals := make([]interface{}, len(c.Enum))
		for i, e := range c.Enum {
			vals[i] = e
		}
		rules = append(rules, validation.In(vals...).Error(c.Mensagens.Enum))
	}
	if c.Formato == FormatoEmail {
		rules = append(rules, is.Email.Error(c.Mensagens.Formato))
	}
	if err := validation.Validate(str, rules...); err != nil {
		return err.Error()
	}
	if c.Formato == FormatoDataHora {
		if _, err := ParseDataHora(str); err != nil {
			return c.Mensagens.Formato
		}
	}
	return ""
}

func (c Campo) validarNumero(n float64) string {
	// Numeric bounds are compared directly: ozzo's Min/Max skip the zero
	// value, which would let capacidade=0 slip past a minimum of 1.
	if c.Min != nil && n < *c.Min {
		return c.Mensagens.Min
	}
	if c.Max != nil && n > *c.Max {
		return c.Mensagens.Max
	}
	return ""
}

// ParseDataHora parses the timestamp format FormatoDataHora accepts:
// RFC 3339, or the offset-less form the validation message advertises
// (2024-12-25T14:30:00), read as UTC.
func ParseDataHora(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
