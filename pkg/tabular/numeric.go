package tabular

import (
	"strconv"
	"strings"
	"time"
)

// ParseNumber parses a cell as a float, trimming whitespace. The second
// result is false for empty or non-numeric cells.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Sum adds the numeric cells of values; non-numeric cells count as 0.
func Sum(values []string) float64 {
	var total float64
	for _, v := range values {
		if f, ok := ParseNumber(v); ok {
			total += f
		}
	}
	return total
}

// Mean averages the numeric cells of values; non-numeric cells are
// excluded from the denominator, not zeroed. Returns false when no cell
// is numeric.
func Mean(values []string) (float64, bool) {
	var total float64
	n := 0
	for _, v := range values {
		if f, ok := ParseNumber(v); ok {
			total += f
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

var dateLayouts = []string{"2006-01-02", "2006/01/02", "02-01-2006", "02/01/2006"}

// ParseDate parses a cell against the accepted date layouts. Cells that
// match none of them are reported unparsable, never an error.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
