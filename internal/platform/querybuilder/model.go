package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an insert from the exported `db`-tagged fields of model.
// With conflict keys the insert becomes an upsert on them.
func InsertModel(table string, model any, conflict ...string) (string, []any, error) {
	cols, vals, err := ModelColumns(model)
	if err != nil {
		return "", nil, err
	}
	b := InsertInto(table).Columns(cols...).Values(vals...)
	if len(conflict) > 0 {
		b.OnConflictUpdate(conflict...)
	}
	return b.ToSQL()
}

// ModelColumns lists the db column names and field values of a struct.
func ModelColumns(model any) ([]string, []any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	t := v.Type()
	var cols []string
	var vals []any
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(f.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, v.Field(i).Interface())
	}
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
