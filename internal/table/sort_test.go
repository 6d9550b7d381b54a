package table

import (
	"testing"
	"time"
)

type person struct {
	Name   string
	Age    int
	Score  *float64
	Joined time.Time
	Nick   string `table:"nickname"`
}

func names(rows []*person) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatPtr(f float64) *float64 { return &f }

func TestNextSort(t *testing.T) {
	tests := []struct {
		name string
		cur  SortConfig
		key  string
		want SortConfig
	}{
		{"absent starts ascending", SortConfig{}, "name", SortConfig{Key: "name", Direction: Ascending}},
		{"same key asc flips to desc", SortConfig{Key: "name", Direction: Ascending}, "name", SortConfig{Key: "name", Direction: Descending}},
		{"same key desc flips to asc", SortConfig{Key: "name", Direction: Descending}, "name", SortConfig{Key: "name", Direction: Ascending}},
		{"other key asc restarts", SortConfig{Key: "name", Direction: Ascending}, "age", SortConfig{Key: "age", Direction: Ascending}},
		{"other key desc restarts", SortConfig{Key: "name", Direction: Descending}, "age", SortConfig{Key: "age", Direction: Ascending}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextSort(tt.cur, tt.key); got != tt.want {
				t.Errorf("NextSort(%+v, %q) = %+v, want %+v", tt.cur, tt.key, got, tt.want)
			}
		})
	}
}

func TestResolveOrderPassthrough(t *testing.T) {
	rows := []*person{{Name: "Bob"}, {Name: "Alice"}}
	got := ResolveOrder(rows, SortConfig{})
	if len(got) != len(rows) || &got[0] != &rows[0] {
		t.Fatal("expected the input slice back when no sort is active")
	}
}

func TestResolveOrderExample(t *testing.T) {
	bob := &person{Name: "Bob", Age: 35}
	alice := &person{Name: "Alice", Age: 28}
	rows := []*person{bob, alice}

	cfg := NextSort(SortConfig{}, "Name")
	if got := names(ResolveOrder(rows, cfg)); !equalStrings(got, []string{"Alice", "Bob"}) {
		t.Errorf("name asc: got %v", got)
	}

	cfg = NextSort(cfg, "Name")
	if got := names(ResolveOrder(rows, cfg)); !equalStrings(got, []string{"Bob", "Alice"}) {
		t.Errorf("name desc: got %v", got)
	}

	cfg = NextSort(cfg, "Age")
	if cfg.Direction != Ascending {
		t.Fatalf("new column should start ascending, got %v", cfg.Direction)
	}
	if got := names(ResolveOrder(rows, cfg)); !equalStrings(got, []string{"Alice", "Bob"}) {
		t.Errorf("age asc: got %v", got)
	}
}

func TestResolveOrderDoesNotMutateInput(t *testing.T) {
	rows := []*person{{Name: "c"}, {Name: "a"}, {Name: "b"}}
	before := append([]*person(nil), rows...)

	ResolveOrder(rows, SortConfig{Key: "Name"})

	for i := range rows {
		if rows[i] != before[i] {
			t.Fatalf("input reordered at %d", i)
		}
	}
}

func TestResolveOrderStable(t *testing.T) {
	rows := []*person{
		{Name: "a1", Age: 30},
		{Name: "b1", Age: 20},
		{Name: "a2", Age: 30},
		{Name: "b2", Age: 20},
		{Name: "a3", Age: 30},
	}

	tests := []struct {
		dir  Direction
		want []string
	}{
		{Ascending, []string{"b1", "b2", "a1", "a2", "a3"}},
		{Descending, []string{"a1", "a2", "a3", "b1", "b2"}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := names(ResolveOrder(rows, SortConfig{Key: "Age", Direction: tt.dir}))
			if !equalStrings(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveOrderIdempotentAndRoundTrip(t *testing.T) {
	rows := []*person{
		{Name: "Dana", Age: 41},
		{Name: "Ana", Age: 19},
		{Name: "Cy", Age: 41},
		{Name: "Bo", Age: 33},
	}

	asc := SortConfig{Key: "Age", Direction: Ascending}
	first := names(ResolveOrder(rows, asc))
	second := names(ResolveOrder(rows, asc))
	if !equalStrings(first, second) {
		t.Fatalf("sorting twice differs: %v vs %v", first, second)
	}

	cfg := NextSort(NextSort(asc, "Age"), "Age")
	if cfg != asc {
		t.Fatalf("asc -> desc -> asc gave %+v", cfg)
	}
	if got := names(ResolveOrder(rows, cfg)); !equalStrings(got, first) {
		t.Errorf("round trip: got %v, want %v", got, first)
	}
}

func TestResolveOrderMissingValuesLast(t *testing.T) {
	rows := []*person{
		{Name: "none", Score: nil},
		{Name: "low", Score: floatPtr(1.5)},
		{Name: "high", Score: floatPtr(9)},
	}

	for _, dir := range []Direction{Ascending, Descending} {
		got := names(ResolveOrder(rows, SortConfig{Key: "Score", Direction: dir}))
		if got[len(got)-1] != "none" {
			t.Errorf("%s: nil score should sort last, got %v", dir, got)
		}
	}

	got := names(ResolveOrder(rows, SortConfig{Key: "Missing"}))
	if !equalStrings(got, []string{"none", "low", "high"}) {
		t.Errorf("unknown key should keep input order, got %v", got)
	}
}

func TestResolveOrderTimes(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []*person{
		{Name: "late", Joined: base.AddDate(0, 2, 0)},
		{Name: "early", Joined: base},
		{Name: "mid", Joined: base.AddDate(0, 1, 0)},
	}
	got := names(ResolveOrder(rows, SortConfig{Key: "Joined"}))
	if !equalStrings(got, []string{"early", "mid", "late"}) {
		t.Errorf("got %v", got)
	}
}

func TestResolveOrderZeroTimeLast(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []*person{
		{Name: "unknown"},
		{Name: "late", Joined: base.AddDate(0, 1, 0)},
		{Name: "early", Joined: base},
	}
	tests := []struct {
		dir  Direction
		want []string
	}{
		{Ascending, []string{"early", "late", "unknown"}},
		{Descending, []string{"late", "early", "unknown"}},
	}
	for _, tt := range tests {
		got := names(ResolveOrder(rows, SortConfig{Key: "Joined", Direction: tt.dir}))
		if !equalStrings(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestResolveOrderMapRows(t *testing.T) {
	rows := []*map[string]any{
		{"id": 3, "v": "c"},
		{"id": 1.5, "v": "a"},
		{"id": uint8(2), "v": "b"},
		{"v": "missing"},
		{"id": "text", "v": "str"},
	}
	got := ResolveOrder(rows, SortConfig{Key: "id"})
	var order []string
	for _, r := range got {
		order = append(order, (*r)["v"].(string))
	}
	// Numbers compare across int, uint and float; strings rank after numbers.
	want := []string{"a", "b", "c", "str", "missing"}
	if !equalStrings(order, want) {
		t.Errorf("got %v, want %v", order, want)
	}
}

func TestCompareNumbersSignedUnsigned(t *testing.T) {
	tests := []struct {
		a, b any
		want int
	}{
		{int64(-1), uint64(0), -1},
		{uint64(0), int64(-1), 1},
		{int64(5), uint64(5), 0},
		{int64(2), 2.5, -1},
		{uint64(1 << 63), int64(1), 1},
	}
	for _, tt := range tests {
		if got := compareNumbers(tt.a, tt.b); got != tt.want {
			t.Errorf("compareNumbers(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
