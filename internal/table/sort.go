package table

import (
	"cmp"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// Direction is the order of an active sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Glyph returns the header indicator for the direction.
func (d Direction) Glyph() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// SortConfig is the active sort. The zero value means no sort: rows are shown
// in the order the owner supplied them.
type SortConfig struct {
	Key       string
	Direction Direction
}

// Active reports whether a sort key is set.
func (c SortConfig) Active() bool {
	return c.Key != ""
}

// NextSort returns the sort after the header for key is activated. A new key
// starts ascending; the current key flips between ascending and descending.
func NextSort(cur SortConfig, key string) SortConfig {
	if cur.Key == key && cur.Direction == Ascending {
		return SortConfig{Key: key, Direction: Descending}
	}
	return SortConfig{Key: key, Direction: Ascending}
}

// ResolveOrder returns rows in display order for cfg. Without an active sort
// rows is returned as is. Otherwise a new slice is stable-sorted by the value
// at cfg.Key; rows is never modified. Missing values sort last in both
// directions.
func ResolveOrder[T any](rows []*T, cfg SortConfig) []*T {
	if !cfg.Active() {
		return rows
	}

	items := make([]sortItem[T], len(rows))
	for i, r := range rows {
		items[i] = sortItem[T]{row: r, key: newSortKey(r, cfg.Key)}
	}

	desc := cfg.Direction == Descending
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].key, items[j].key
		if a.missing || b.missing {
			return !a.missing && b.missing
		}
		c := compareKeys(a, b)
		if desc {
			c = -c
		}
		return c < 0
	})

	ordered := make([]*T, len(items))
	for i, it := range items {
		ordered[i] = it.row
	}
	return ordered
}

type sortItem[T any] struct {
	row *T
	key sortKey
}

// rank orders values of different kinds against each other.
type rank int

const (
	rankBool rank = iota
	rankNumber
	rankString
	rankTime
	rankOther
)

type sortKey struct {
	missing bool
	rank    rank
	value   any
}

func newSortKey(row any, key string) sortKey {
	v, ok := lookup(row, key)
	if !ok {
		return sortKey{missing: true}
	}
	return classify(v)
}

func classify(v any) sortKey {
	if v == nil {
		return sortKey{missing: true}
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return sortKey{missing: true}
		}
		rv = rv.Elem()
	}

	if rv.CanInterface() {
		if t, ok := rv.Interface().(time.Time); ok {
			// Zero times display as a placeholder, so they sort with the
			// missing values.
			if t.IsZero() {
				return sortKey{missing: true}
			}
			return sortKey{rank: rankTime, value: t}
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return sortKey{rank: rankBool, value: rv.Bool()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sortKey{rank: rankNumber, value: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sortKey{rank: rankNumber, value: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return sortKey{rank: rankNumber, value: rv.Float()}
	case reflect.String:
		return sortKey{rank: rankString, value: rv.String()}
	}

	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return sortKey{rank: rankOther, value: s.String()}
	}
	return sortKey{rank: rankOther, value: fmt.Sprint(rv.Interface())}
}

func compareKeys(a, b sortKey) int {
	if a.rank != b.rank {
		return cmp.Compare(a.rank, b.rank)
	}
	switch a.rank {
	case rankBool:
		return compareBools(a.value.(bool), b.value.(bool))
	case rankNumber:
		return compareNumbers(a.value, b.value)
	case rankTime:
		return a.value.(time.Time).Compare(b.value.(time.Time))
	default:
		return strings.Compare(a.value.(string), b.value.(string))
	}
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareNumbers(a, b any) int {
	switch x := a.(type) {
	case int64:
		switch y := b.(type) {
		case int64:
			return cmp.Compare(x, y)
		case uint64:
			if x < 0 {
				return -1
			}
			return cmp.Compare(uint64(x), y)
		}
	case uint64:
		switch y := b.(type) {
		case uint64:
			return cmp.Compare(x, y)
		case int64:
			if y < 0 {
				return 1
			}
			return cmp.Compare(x, uint64(y))
		}
	}
	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float64:
		return x
	}
	return 0
}
