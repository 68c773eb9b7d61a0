// Package sqlbuilder assembles parameterized PostgreSQL statements. It only
// builds strings and argument lists; identifiers are expected to come from
// code, never from request input.
package sqlbuilder

import (
	"strconv"
	"strings"
)

// Cast is the type cast appended to a filter placeholder, e.g. "::int".
type Cast string

const (
	CastNone      Cast = ""
	CastInt       Cast = "::int"
	CastTimestamp Cast = "::timestamptz"
)

// Filter matches Column against any of Values.
type Filter struct {
	Column string
	Cast   Cast
	Values []any
}

// Field is a column/value pair of an insert or update statement.
type Field struct {
	Column string
	Value  any
}

type OrderBy struct {
	Column string
	Desc   bool
}

func (o OrderBy) String() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column
}

func SelectByKey(table, keyColumn string) string {
	return "SELECT * FROM " + table + " WHERE " + keyColumn + " = $1"
}

// SelectFiltered reserves $1 for LIMIT and, when withOffset is set, $2 for
// OFFSET. An empty columns list selects every column.
func SelectFiltered(table string, columns []string, where string, orderBy []OrderBy, withOffset bool) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(columns, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(table)
	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if len(orderBy) > 0 {
		parts := make([]string, 0, len(orderBy))
		for _, o := range orderBy {
			parts = append(parts, o.String())
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	b.WriteString(" LIMIT $1")
	if withOffset {
		b.WriteString(" OFFSET $2")
	}
	return b.String()
}

// Insert numbers placeholders row by row: ($1, $2), ($3, $4), ...
func Insert(table string, columns []string, rows int) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(") VALUES ")
	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for c := range columns {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString(placeholder(n))
			n++
		}
		b.WriteString(")")
	}
	b.WriteString(" RETURNING *")
	return b.String()
}

// Update reserves $1 for the key; updated columns follow from $2 in order.
func Update(table, keyColumn string, columns []string) string {
	sets := make([]string, 0, len(columns))
	for i, column := range columns {
		sets = append(sets, column+" = "+placeholder(i+2))
	}
	return "UPDATE " + table + " SET " + strings.Join(sets, ", ") +
		" WHERE " + keyColumn + " = $1 RETURNING *"
}

func Delete(table, keyColumn string) string {
	return "DELETE FROM " + table + " WHERE " + keyColumn + " = $1 RETURNING " + keyColumn
}

// FilterPredicate renders every filter with values as
// "col = ANY(VALUES ($i::cast), ...)" and joins them with AND. Numbering
// starts at startIndex. The returned args follow placeholder order.
func FilterPredicate(filters []Filter, startIndex int) (string, []any) {
	parts := make([]string, 0, len(filters))
	var args []any
	i := startIndex
	for _, f := range filters {
		if len(f.Values) == 0 {
			continue
		}
		subs := make([]string, 0, len(f.Values))
		for range f.Values {
			subs = append(subs, "("+placeholder(i)+string(f.Cast)+")")
			i++
		}
		parts = append(parts, f.Column+" = ANY(VALUES "+strings.Join(subs, ", ")+")")
		args = append(args, f.Values...)
	}
	return strings.Join(parts, " AND "), args
}

func EstimatedCount(table string) string {
	return "SELECT reltuples::bigint AS estimate FROM pg_class WHERE oid = 'public." + table + "'::regclass"
}

func Analyze(table string) string {
	return "ANALYZE " + table
}

// Fields splits fields into column names and values keeping their order.
func Fields(fields []Field) ([]string, []any) {
	columns := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for _, f := range fields {
		columns = append(columns, f.Column)
		values = append(values, f.Value)
	}
	return columns, values
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
