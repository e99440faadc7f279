// Package querybuilder assembles PostgreSQL statements with numbered
// placeholders. It covers the handful of shapes the repositories need and does
// not try to be a general SQL builder.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// writer accumulates SQL text and bound arguments.
type writer struct {
	sql  strings.Builder
	args []any
}

func (w *writer) bind(v any) {
	w.args = append(w.args, v)
	w.sql.WriteString("$" + strconv.Itoa(len(w.args)))
}

func (w *writer) raw(s ...string) {
	for _, part := range s {
		w.sql.WriteString(part)
	}
}

// expr writes s, binding one argument per '?'. Extra '?' are written as is.
func (w *writer) expr(s string, args []any) {
	next := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.sql.WriteByte(s[i])
	}
}

func (w *writer) where(conds []Condition) {
	if len(conds) == 0 {
		return
	}
	w.raw(" WHERE ")
	for i, c := range conds {
		if i > 0 {
			w.raw(" AND ")
		}
		c.write(w)
	}
}

func (w *writer) result() (string, []any, error) {
	return w.sql.String(), w.args, nil
}

type Condition interface {
	write(w *writer)
}

type condFunc func(w *writer)

func (f condFunc) write(w *writer) { f(w) }

func Eq(column string, value any) Condition {
	return condFunc(func(w *writer) {
		w.raw(column, " = ")
		w.bind(value)
	})
}

// In matches nothing when values is empty.
func In(column string, values []any) Condition {
	return condFunc(func(w *writer) {
		if len(values) == 0 {
			w.raw("1=0")
			return
		}
		w.raw(column, " IN (")
		for i, v := range values {
			if i > 0 {
				w.raw(", ")
			}
			w.bind(v)
		}
		w.raw(")")
	})
}

func IsNull(column string) Condition {
	return condFunc(func(w *writer) { w.raw(column, " IS NULL") })
}

// Expr is a raw condition with '?' placeholders.
func Expr(sql string, args ...any) Condition {
	return condFunc(func(w *writer) { w.expr(sql, args) })
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conds ...Condition) *SelectBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = n
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var w writer
	w.raw("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	w.where(b.where)
	if len(b.orderBy) > 0 {
		w.raw(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.raw(" LIMIT ", strconv.Itoa(b.limit))
	}
	return w.result()
}

type InsertBuilder struct {
	table    string
	columns  []string
	values   []any
	conflict []string
	suffix   string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = append([]any(nil), values...)
	return b
}

// OnConflictUpdate turns the insert into an upsert on the key columns,
// overwriting every other inserted column.
func (b *InsertBuilder) OnConflictUpdate(keys ...string) *InsertBuilder {
	b.conflict = append([]string(nil), keys...)
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.values) != len(b.columns) {
		return "", nil, fmt.Errorf("insert has %d values for %d columns", len(b.values), len(b.columns))
	}

	var w writer
	w.raw("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES (")
	for i, v := range b.values {
		if i > 0 {
			w.raw(", ")
		}
		w.bind(v)
	}
	w.raw(")")

	if len(b.conflict) > 0 {
		w.raw(" ON CONFLICT (", strings.Join(b.conflict, ", "), ") DO UPDATE SET ")
		keys := make(map[string]struct{}, len(b.conflict))
		for _, k := range b.conflict {
			keys[k] = struct{}{}
		}
		first := true
		for _, col := range b.columns {
			if _, isKey := keys[col]; isKey {
				continue
			}
			if !first {
				w.raw(", ")
			}
			first = false
			w.raw(col, " = EXCLUDED.", col)
		}
	}
	if b.suffix != "" {
		w.raw(" ", b.suffix)
	}
	return w.result()
}

type assignment struct {
	column string
	value  any
	expr   string
	args   []any
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

// SetExpr assigns a raw SQL expression, e.g. "NOW()".
func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, expr: expr, args: args})
	return b
}

func (b *UpdateBuilder) Where(conds ...Condition) *UpdateBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var w writer
	w.raw("UPDATE ", b.table, " SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.raw(", ")
		}
		w.raw(s.column, " = ")
		if s.expr != "" {
			w.expr(s.expr, s.args)
			continue
		}
		w.bind(s.value)
	}
	w.where(b.where)
	return w.result()
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conds ...Condition) *DeleteBuilder {
	b.where = append(b.where, conds...)
	return b
}

// ToSQL refuses to build an unconditioned delete.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete requires a where clause")
	}

	var w writer
	w.raw("DELETE FROM ", b.table)
	w.where(b.where)
	return w.result()
}
