// internal/views/application-view/queries/predicate.go
package queries

import (
	"strconv"
	"strings"
)

// Predicate is one boolean SQL fragment written with '?' placeholders and
// the values bound to them, in order. Values never enter the SQL text.
type Predicate struct {
	SQL  string
	Args []interface{}
}

func Eq(column string, value interface{}) Predicate {
	return Predicate{SQL: column + " = ?", Args: []interface{}{value}}
}

// In matches any of values. With no values it matches nothing.
func In(column string, values ...interface{}) Predicate {
	if len(values) == 0 {
		return Predicate{SQL: "1 = 0"}
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	return Predicate{SQL: column + " IN (" + marks + ")", Args: values}
}

func Gte(column string, value interface{}) Predicate {
	return Predicate{SQL: column + " >= ?", Args: []interface{}{value}}
}

func Lte(column string, value interface{}) Predicate {
	return Predicate{SQL: column + " <= ?", Args: []interface{}{value}}
}

// Between is inclusive on both ends.
func Between(column string, low, high interface{}) Predicate {
	return Predicate{SQL: column + " BETWEEN ? AND ?", Args: []interface{}{low, high}}
}

// Compose appends preds to base as a single AND-ed WHERE clause and rewrites
// the placeholders to PostgreSQL positional parameters ($1..$n). With no
// predicates base is returned unchanged.
func Compose(base string, preds ...Predicate) (string, []interface{}) {
	if len(preds) == 0 {
		return base, nil
	}

	clauses := make([]string, 0, len(preds))
	args := make([]interface{}, 0, len(preds))
	for _, p := range preds {
		clauses = append(clauses, p.SQL)
		args = append(args, p.Args...)
	}

	query := base + " WHERE " + strings.Join(clauses, " AND ")
	return rebind(query), args
}

func rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
