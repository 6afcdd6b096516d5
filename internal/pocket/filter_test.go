package pocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterRendering(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{
			name:     "owner and farm",
			expr:     And(Eq("user", "u1"), Eq("farm", "f1")),
			expected: `user="u1" && farm="f1"`,
		},
		{
			name:     "owner only, zero farm clause skipped",
			expr:     And(Eq("user", "u1"), Expr{}),
			expected: `user="u1"`,
		},
		{
			name:     "substring match",
			expr:     Like("producto_empleado", "raticida"),
			expected: `producto_empleado~"raticida"`,
		},
		{
			name:     "boolean equality",
			expr:     Eq("activo", true),
			expected: `activo=true`,
		},
		{
			name:     "not equal",
			expr:     NotEq("puesto", "encargado"),
			expected: `puesto!="encargado"`,
		},
		{
			name:     "integer bound",
			expr:     Gte("horas", 20),
			expected: `horas>=20`,
		},
		{
			name: "date range",
			expr: And(
				Gte("fecha", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
				Lte("fecha", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)),
			),
			expected: `fecha>="2024-03-01 00:00:00.000Z" && fecha<="2024-03-31 00:00:00.000Z"`,
		},
		{
			name:     "or group is parenthesized",
			expr:     And(Eq("user", "u1"), Or(Eq("tipo_residuo", "zoosanitario"), Eq("tipo_residuo", "envases"))),
			expected: `user="u1" && (tipo_residuo="zoosanitario" || tipo_residuo="envases")`,
		},
		{
			name:     "single-branch or has no parens",
			expr:     Or(Eq("user", "u1")),
			expected: `user="u1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.expr.String())
		})
	}
}

func TestFilterEscaping(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "embedded double quote",
			value:    `u1" || user!="`,
			expected: `user="u1\" || user!=\""`,
		},
		{
			name:     "embedded backslash",
			value:    `a\b`,
			expected: `user="a\\b"`,
		},
		{
			name:     "plain value untouched",
			value:    "u1",
			expected: `user="u1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Eq("user", tt.value).String())
		})
	}
}
