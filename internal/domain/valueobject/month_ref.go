// Package valueobject defines immutable domain values shared across use cases.
package valueobject

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// monthRefPattern matches the canonical YYYY-MM month reference shape.
var monthRefPattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)

// MonthRef identifies a calendar month (year + month). It is the scope
// key for every goal, ranking and rollup computation.
type MonthRef struct {
	year  int
	month time.Month
}

// ParseMonthRef parses a "YYYY-MM" string into a MonthRef. Malformed
// input is rejected here, before any data access happens.
func ParseMonthRef(s string) (MonthRef, error) {
	m := monthRefPattern.FindStringSubmatch(s)
	if m == nil {
		return MonthRef{}, fmt.Errorf("invalid reference month %q: expected YYYY-MM", s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return MonthRef{year: year, month: time.Month(month)}, nil
}

// MonthRefOf returns the MonthRef containing the given instant.
func MonthRefOf(t time.Time) MonthRef {
	return MonthRef{year: t.Year(), month: t.Month()}
}

// String returns the canonical "YYYY-MM" form.
func (m MonthRef) String() string {
	return fmt.Sprintf("%04d-%02d", m.year, int(m.month))
}

// IsZero reports whether the MonthRef is the zero value.
func (m MonthRef) IsZero() bool {
	return m.year == 0
}

// FirstDay returns the first calendar day of the month, at midnight UTC.
func (m MonthRef) FirstDay() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns the actual last calendar day of the month (28-31,
// leap-year aware).
func (m MonthRef) LastDay() time.Time {
	return m.FirstDay().AddDate(0, 1, -1)
}

// Window returns the inclusive [first day, last day] aggregation window.
func (m MonthRef) Window() (start, end time.Time) {
	return m.FirstDay(), m.LastDay()
}

// Contains reports whether the given instant's calendar day falls inside
// this month.
func (m MonthRef) Contains(t time.Time) bool {
	return t.Year() == m.year && t.Month() == m.month
}
