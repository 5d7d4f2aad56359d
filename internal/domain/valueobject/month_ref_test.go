// Package valueobject defines immutable domain values shared across use cases.
package valueobject

import (
	"testing"
	"time"
)

func TestParseMonthRef(t *testing.T) {
	t.Run("accepts canonical YYYY-MM input", func(t *testing.T) {
		ref, err := ParseMonthRef("2025-03")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ref.String() != "2025-03" {
			t.Errorf("expected 2025-03, got %s", ref.String())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		malformed := []string{
			"",
			"2025",
			"2025-13",
			"2025-00",
			"2025-3",
			"25-03",
			"2025/03",
			"2025-03-01",
			"abcd-ef",
		}
		for _, input := range malformed {
			if _, err := ParseMonthRef(input); err == nil {
				t.Errorf("expected error for %q, got none", input)
			}
		}
	})
}

func TestMonthRefWindow(t *testing.T) {
	t.Run("31-day month", func(t *testing.T) {
		ref, _ := ParseMonthRef("2025-01")
		start, end := ref.Window()
		if !start.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected window start: %v", start)
		}
		if !end.Equal(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected window end: %v", end)
		}
	})

	t.Run("February in a common year ends on the 28th", func(t *testing.T) {
		ref, _ := ParseMonthRef("2025-02")
		if ref.LastDay().Day() != 28 {
			t.Errorf("expected day 28, got %d", ref.LastDay().Day())
		}
	})

	t.Run("February in a leap year ends on the 29th", func(t *testing.T) {
		ref, _ := ParseMonthRef("2024-02")
		if ref.LastDay().Day() != 29 {
			t.Errorf("expected day 29, got %d", ref.LastDay().Day())
		}
	})

	t.Run("30-day month", func(t *testing.T) {
		ref, _ := ParseMonthRef("2025-04")
		if ref.LastDay().Day() != 30 {
			t.Errorf("expected day 30, got %d", ref.LastDay().Day())
		}
	})
}

func TestMonthRefContains(t *testing.T) {
	ref, _ := ParseMonthRef("2024-02")

	t.Run("includes both window boundaries", func(t *testing.T) {
		first := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)
		if !ref.Contains(first) {
			t.Error("expected first day to be contained")
		}
		if !ref.Contains(last) {
			t.Error("expected leap day to be contained")
		}
	})

	t.Run("excludes adjacent months", func(t *testing.T) {
		if ref.Contains(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected January 31 to be excluded")
		}
		if ref.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected March 1 to be excluded")
		}
	})
}

func TestMonthRefOf(t *testing.T) {
	ref := MonthRefOf(time.Date(2025, time.December, 31, 18, 30, 0, 0, time.UTC))
	if ref.String() != "2025-12" {
		t.Errorf("expected 2025-12, got %s", ref.String())
	}
}
