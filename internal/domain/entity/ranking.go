// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RankingEntry is one row of the monthly leaderboard. It is derived on
// read and never persisted.
type RankingEntry struct {
	SellerID       uuid.UUID
	DisplayName    string
	AvatarURL      string
	Level          ProfileLevel
	RealizedAmount decimal.Decimal
	RankPosition   int // 1-based, assigned after sorting

	// IndividualGoalAmount and PercentOfIndividualGoal are nil when the
	// seller has no positive goal for the month. Presentation must render
	// "no goal", never 0%.
	IndividualGoalAmount    *decimal.Decimal
	PercentOfIndividualGoal *float64

	// PercentOfConsolidatedGoal is nil when the month has no consolidated
	// goal.
	PercentOfConsolidatedGoal *float64
}

// GoalContributor is one of the top sellers behind a consolidated goal,
// re-aggregated over that goal's own month window.
type GoalContributor struct {
	SellerID       uuid.UUID
	DisplayName    string
	AvatarURL      string
	RealizedAmount decimal.Decimal
}
