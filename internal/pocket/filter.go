package pocket

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Expr is a rendered filter expression for the store's query language.
// Expressions are built through the constructors below, which quote and
// escape values; raw strings are never concatenated into a filter.
type Expr struct {
	s string
}

func (e Expr) String() string {
	return e.s
}

func (e Expr) IsZero() bool {
	return e.s == ""
}

// Eq matches records whose field equals value.
func Eq(field string, value any) Expr {
	return Expr{field + "=" + literal(value)}
}

// NotEq matches records whose field differs from value.
func NotEq(field string, value any) Expr {
	return Expr{field + "!=" + literal(value)}
}

// Gte matches records whose field is at or above value.
func Gte(field string, value any) Expr {
	return Expr{field + ">=" + literal(value)}
}

// Lte matches records whose field is at or below value.
func Lte(field string, value any) Expr {
	return Expr{field + "<=" + literal(value)}
}

// Like matches records whose field contains value as a substring.
func Like(field string, value string) Expr {
	return Expr{field + "~" + literal(value)}
}

// And joins expressions with &&. Zero expressions are skipped, so
// optional clauses can be passed unconditionally.
func And(exprs ...Expr) Expr {
	return join(" && ", exprs)
}

// Or joins expressions with ||, parenthesized so the group composes
// safely inside a surrounding And.
func Or(exprs ...Expr) Expr {
	e := join(" || ", exprs)
	if strings.Contains(e.s, " || ") {
		e.s = "(" + e.s + ")"
	}
	return e
}

func join(sep string, exprs []Expr) Expr {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		if !e.IsZero() {
			parts = append(parts, e.s)
		}
	}
	return Expr{strings.Join(parts, sep)}
}

func literal(v any) string {
	switch x := v.(type) {
	case string:
		return quote(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return quote(x.UTC().Format("2006-01-02 15:04:05.000Z"))
	default:
		return quote(fmt.Sprint(x))
	}
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
