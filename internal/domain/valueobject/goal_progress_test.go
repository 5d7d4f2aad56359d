// Package valueobject defines immutable domain values shared across use cases.
package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestNewGoalProgress_PercentGuard(t *testing.T) {
	t.Run("zero target yields zero percent, never an error", func(t *testing.T) {
		p := NewGoalProgress(decimal.Zero, d("500"), DefaultIndividualSuperTargetPercent)
		if p.Percent != 0 {
			t.Errorf("expected percent 0, got %f", p.Percent)
		}
		if p.Status != TierBelowTarget {
			t.Errorf("expected below_target, got %s", p.Status)
		}
	})

	t.Run("negative target yields zero percent", func(t *testing.T) {
		p := NewGoalProgress(d("-100"), d("500"), DefaultIndividualSuperTargetPercent)
		if p.Percent != 0 {
			t.Errorf("expected percent 0, got %f", p.Percent)
		}
	})

	t.Run("percent is uncapped while visual percent stops at 100", func(t *testing.T) {
		p := NewGoalProgress(d("1000"), d("1300"), DefaultIndividualSuperTargetPercent)
		if p.Percent != 130 {
			t.Errorf("expected percent 130, got %f", p.Percent)
		}
		if p.VisualPercent != 100 {
			t.Errorf("expected visual percent 100, got %f", p.VisualPercent)
		}
	})
}

func TestNewGoalProgress_Shortfall(t *testing.T) {
	t.Run("positive when under target", func(t *testing.T) {
		p := NewGoalProgress(d("1000"), d("400"), DefaultIndividualSuperTargetPercent)
		if !p.Shortfall.Equal(d("600")) {
			t.Errorf("expected shortfall 600, got %s", p.Shortfall)
		}
	})

	t.Run("floored at zero when over target", func(t *testing.T) {
		p := NewGoalProgress(d("1000"), d("1500"), DefaultIndividualSuperTargetPercent)
		if !p.Shortfall.IsZero() {
			t.Errorf("expected shortfall 0, got %s", p.Shortfall)
		}
	})
}

func TestNewGoalProgress_StatusTiers(t *testing.T) {
	cases := []struct {
		name     string
		realized string
		want     StatusTier
	}{
		{"just under target", "999.99", TierBelowTarget},
		{"exactly on target", "1000", TierOnTarget},
		{"between target and threshold", "1200", TierOnTarget},
		{"just under threshold", "1499.99", TierOnTarget},
		{"exactly on threshold", "1500", TierSuperTarget},
		{"far beyond threshold", "5000", TierSuperTarget},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewGoalProgress(d("1000"), d(tc.realized), DefaultIndividualSuperTargetPercent)
			if p.Status != tc.want {
				t.Errorf("realized %s: expected %s, got %s", tc.realized, tc.want, p.Status)
			}
		})
	}
}

func TestNewGoalProgress_ConsolidatedThreshold(t *testing.T) {
	// Consolidated goals flip to super target at 120%, not 150%.
	p := NewGoalProgress(d("10000"), d("12000"), DefaultConsolidatedSuperTargetPercent)
	if p.Status != TierSuperTarget {
		t.Errorf("expected super_target at 120%%, got %s", p.Status)
	}

	p = NewGoalProgress(d("10000"), d("11999"), DefaultConsolidatedSuperTargetPercent)
	if p.Status != TierOnTarget {
		t.Errorf("expected on_target below 120%%, got %s", p.Status)
	}
}
