package pages

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultDash returns an em dash when the provided value is empty or whitespace.
func DefaultDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

// FormatDate renders a timestamp as a friendly day month year, or a dash for
// the zero time.
func FormatDate(value time.Time) string {
	if value.IsZero() {
		return "—"
	}
	return value.Format("02 Jan 2006")
}

// FormatQuantity renders a count, dashing out zero.
func FormatQuantity(value int) string {
	if value == 0 {
		return "—"
	}
	return strconv.Itoa(value)
}

// FormatMeasure renders a measurement with its unit, dashing out zero.
func FormatMeasure(value float64, unit string) string {
	if value == 0 {
		return "—"
	}
	return fmt.Sprintf("%s %s", strconv.FormatFloat(value, 'f', -1, 64), unit)
}
