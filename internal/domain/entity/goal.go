// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IndividualGoal is a single seller's monthly sales target ("meta
// individual"). At most one exists per (seller, company, month);
// defining it again updates the existing row.
type IndividualGoal struct {
	ID             uuid.UUID
	SellerID       uuid.UUID
	CompanyID      uuid.UUID
	ReferenceMonth time.Time // normalized to the first day of the month
	TargetAmount   decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewIndividualGoal creates a new IndividualGoal entity.
func NewIndividualGoal(sellerID, companyID uuid.UUID, referenceMonth time.Time, targetAmount decimal.Decimal) *IndividualGoal {
	now := time.Now().UTC()
	return &IndividualGoal{
		ID:             uuid.New(),
		SellerID:       sellerID,
		CompanyID:      companyID,
		ReferenceMonth: referenceMonth,
		TargetAmount:   targetAmount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ConsolidatedGoal is a company-wide monthly target ("meta consolidada")
// aggregating the sales of every seller. At most one exists per
// (company, month).
type ConsolidatedGoal struct {
	ID             uuid.UUID
	CompanyID      uuid.UUID
	ReferenceMonth time.Time
	TargetAmount   decimal.Decimal
	Description    string
	TargetProduct  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewConsolidatedGoal creates a new ConsolidatedGoal entity.
func NewConsolidatedGoal(companyID uuid.UUID, referenceMonth time.Time, targetAmount decimal.Decimal, description, targetProduct string) *ConsolidatedGoal {
	now := time.Now().UTC()
	return &ConsolidatedGoal{
		ID:             uuid.New(),
		CompanyID:      companyID,
		ReferenceMonth: referenceMonth,
		TargetAmount:   targetAmount,
		Description:    description,
		TargetProduct:  targetProduct,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
