// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendagame/backend/internal/domain/entity"
)

// IndividualGoalModel represents the individual_goals table. The
// composite unique index backs the atomic upsert on (seller, month).
type IndividualGoalModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_individual_goal"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReferenceMonth time.Time       `gorm:"type:date;not null;uniqueIndex:uq_individual_goal"`
	TargetAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IndividualGoalModel.
func (IndividualGoalModel) TableName() string {
	return "individual_goals"
}

// ToEntity converts an IndividualGoalModel to a domain entity.
func (m *IndividualGoalModel) ToEntity() *entity.IndividualGoal {
	return &entity.IndividualGoal{
		ID:             m.ID,
		SellerID:       m.SellerID,
		CompanyID:      m.CompanyID,
		ReferenceMonth: m.ReferenceMonth,
		TargetAmount:   m.TargetAmount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// IndividualGoalFromEntity creates an IndividualGoalModel from a domain entity.
func IndividualGoalFromEntity(goal *entity.IndividualGoal) *IndividualGoalModel {
	return &IndividualGoalModel{
		ID:             goal.ID,
		SellerID:       goal.SellerID,
		CompanyID:      goal.CompanyID,
		ReferenceMonth: goal.ReferenceMonth,
		TargetAmount:   goal.TargetAmount,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}

// ConsolidatedGoalModel represents the consolidated_goals table. The
// composite unique index backs the atomic upsert on (company, month).
type ConsolidatedGoalModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_consolidated_goal"`
	ReferenceMonth time.Time       `gorm:"type:date;not null;uniqueIndex:uq_consolidated_goal"`
	TargetAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description    string          `gorm:"type:varchar(500)"`
	TargetProduct  string          `gorm:"type:varchar(255)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ConsolidatedGoalModel.
func (ConsolidatedGoalModel) TableName() string {
	return "consolidated_goals"
}

// ToEntity converts a ConsolidatedGoalModel to a domain entity.
func (m *ConsolidatedGoalModel) ToEntity() *entity.ConsolidatedGoal {
	return &entity.ConsolidatedGoal{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		ReferenceMonth: m.ReferenceMonth,
		TargetAmount:   m.TargetAmount,
		Description:    m.Description,
		TargetProduct:  m.TargetProduct,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ConsolidatedGoalFromEntity creates a ConsolidatedGoalModel from a domain entity.
func ConsolidatedGoalFromEntity(goal *entity.ConsolidatedGoal) *ConsolidatedGoalModel {
	return &ConsolidatedGoalModel{
		ID:             goal.ID,
		CompanyID:      goal.CompanyID,
		ReferenceMonth: goal.ReferenceMonth,
		TargetAmount:   goal.TargetAmount,
		Description:    goal.Description,
		TargetProduct:  goal.TargetProduct,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}
