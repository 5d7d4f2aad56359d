// Package valueobject defines immutable domain values shared across use cases.
package valueobject

import "github.com/shopspring/decimal"

// StatusTier classifies how far a realized amount is against its target.
type StatusTier string

const (
	// TierBelowTarget means realized is under 100% of the target.
	TierBelowTarget StatusTier = "below_target"
	// TierOnTarget means the target was reached (percent >= 100).
	TierOnTarget StatusTier = "on_target"
	// TierSuperTarget ("god mode") means the target was exceeded beyond
	// the configured threshold.
	TierSuperTarget StatusTier = "super_target"
)

// The "god mode" threshold is a per-context configuration value, not a
// universal constant: individual goals flip at 150%, consolidated goals
// at 120%.
const (
	DefaultIndividualSuperTargetPercent   = 150.0
	DefaultConsolidatedSuperTargetPercent = 120.0
)

// GoalProgress is the derived progress of a realized amount against a
// target. It is computed on read and never persisted.
type GoalProgress struct {
	TargetAmount   decimal.Decimal
	RealizedAmount decimal.Decimal
	// Percent is uncapped and may exceed 100; it is 0 when the target is
	// not positive (division is guarded, never an error).
	Percent float64
	// VisualPercent is Percent capped at 100, for progress-bar rendering.
	VisualPercent float64
	// Shortfall is target minus realized, floored at zero.
	Shortfall decimal.Decimal
	Status    StatusTier
}

// NewGoalProgress derives a GoalProgress from a target and a realized
// amount. superTargetPercent is the threshold at which the status flips
// to TierSuperTarget; classification picks the highest tier that applies.
func NewGoalProgress(target, realized decimal.Decimal, superTargetPercent float64) GoalProgress {
	progress := GoalProgress{
		TargetAmount:   target,
		RealizedAmount: realized,
		Shortfall:      decimal.Zero,
	}

	if target.IsPositive() {
		percent, _ := realized.Div(target).Mul(decimal.NewFromInt(100)).Float64()
		progress.Percent = percent
	}

	progress.VisualPercent = progress.Percent
	if progress.VisualPercent > 100 {
		progress.VisualPercent = 100
	}

	if shortfall := target.Sub(realized); shortfall.IsPositive() {
		progress.Shortfall = shortfall
	}

	switch {
	case progress.Percent >= superTargetPercent:
		progress.Status = TierSuperTarget
	case progress.Percent >= 100:
		progress.Status = TierOnTarget
	default:
		progress.Status = TierBelowTarget
	}

	return progress
}
