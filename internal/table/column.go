package table

import (
	"reflect"
	"strings"
	"sync"

	"datagrid/internal/util"
)

// Column describes one table column. Key names a field of the row type: an
// exported struct field (by name, `table` tag, or case-insensitive name) or a
// key of a map[string]V row.
type Column struct {
	Key    string
	Header string
	// Width is the content width in cells. Zero sizes the column to fit its
	// header and values.
	Width int
}

const maxAutoWidth = 40

type fieldCacheKey struct {
	typ reflect.Type
	key string
}

// fieldCache maps (struct type, key) to a field index, or nil when the key
// names no field.
var fieldCache sync.Map

// lookup returns the value at key on row. The boolean is false when the row
// has no such field.
func lookup(row any, key string) (any, bool) {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		index := fieldIndex(v.Type(), key)
		if index == nil {
			return nil, false
		}
		fv, err := v.FieldByIndexErr(index)
		if err != nil {
			// Nil embedded pointer on the path.
			return nil, true
		}
		return fv.Interface(), true
	case reflect.Map:
		kt := v.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	default:
		return nil, false
	}
}

func fieldIndex(t reflect.Type, key string) []int {
	ck := fieldCacheKey{typ: t, key: key}
	if cached, ok := fieldCache.Load(ck); ok {
		return cached.([]int)
	}

	var index []int
	fields := reflect.VisibleFields(t)
	for _, f := range fields {
		if f.IsExported() && !f.Anonymous && f.Name == key {
			index = f.Index
			break
		}
	}
	if index == nil {
		for _, f := range fields {
			if !f.IsExported() {
				continue
			}
			tag, _, _ := strings.Cut(f.Tag.Get("table"), ",")
			if tag != "" && tag == key {
				index = f.Index
				break
			}
		}
	}
	if index == nil {
		for _, f := range fields {
			if f.IsExported() && !f.Anonymous && strings.EqualFold(f.Name, key) {
				index = f.Index
				break
			}
		}
	}

	fieldCache.Store(ck, index)
	return index
}

// CellText returns the display text of row's value at key, or "" when the
// row has no such field.
func CellText(row any, key string) string { return cellText(row, key) }

// cellText renders the value at key on row as single-line display text.
func cellText(row any, key string) string {
	v, ok := lookup(row, key)
	if !ok {
		return ""
	}
	return util.SingleLine(util.FormatValue(v))
}
