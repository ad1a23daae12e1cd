package postgres

import (
	"reflect"
	"sync"
)

// column maps a db column name to the index path of the struct field
// that carries it. Index paths are flattened at plan time, so embedded
// bases like entity.Catalog cost nothing on the hot path.
type column struct {
	name string
	path []int
}

// plan is the per-type mapping between db tags and struct fields.
// Built once per type and cached for the lifetime of the process.
type plan struct {
	columns []column
}

var planCache sync.Map // reflect.Type -> *plan

func planFor(t reflect.Type) *plan {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := planCache.Load(t); ok {
		return cached.(*plan)
	}

	p := &plan{}
	if t.Kind() == reflect.Struct {
		p.columns = collectColumns(t, nil)
	}
	planCache.Store(t, p)
	return p
}

// collectColumns walks the struct depth-first, descending into
// anonymous fields and recording every tagged field with its full
// index path relative to the root type.
func collectColumns(t reflect.Type, prefix []int) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		path := append(append([]int(nil), prefix...), i)

		if field.Anonymous {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				cols = append(cols, collectColumns(ft, path)...)
			}
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, column{name: tag, path: path})
	}
	return cols
}

// ExtractDBColumns returns the column names declared by T's "db" tags,
// embedded bases included, in declaration order. Repositories call it
// once at construction to build their select lists.
func ExtractDBColumns[T any]() []string {
	var zero T
	p := planFor(reflect.TypeOf(zero))

	names := make([]string, len(p.columns))
	for i, c := range p.columns {
		names[i] = c.name
	}
	return names
}

// StructToMap converts a struct (or pointer to one) into a
// column-to-value map following its "db" tags. Untagged fields and
// fields tagged "-" are skipped. Non-structs yield nil.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	p := planFor(rv.Type())
	res := make(map[string]any, len(p.columns))
	for _, c := range p.columns {
		res[c.name] = rv.FieldByIndex(c.path).Interface()
	}
	return res
}
