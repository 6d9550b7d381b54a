package util

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// Placeholder is shown for nil values.
const Placeholder = "—"

// FormatValue converts a cell value to display text.
func FormatValue(v any) string {
	if v == nil {
		return Placeholder
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Placeholder
		}
		return FormatValue(rv.Elem().Interface())
	}

	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		if x.IsZero() {
			return Placeholder
		}
		return FormatDate(x)
	case float64:
		return formatNumber(x)
	case float32:
		return formatNumber(float64(x))
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// FormatDate formats a date for display.
func FormatDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

// FormatSince formats a timestamp relative to now ("3 days ago").
func FormatSince(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return humanize.Time(t)
}

// FormatCount formats a count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// Plural returns "1 row" / "2 rows".
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return FormatCount(n) + " " + singular
	}
	return FormatCount(n) + " " + plural
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TruncateString truncates s to maxWidth terminal cells and adds "..." if needed.
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// SingleLine collapses newlines so a value fits in one table cell.
func SingleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}
