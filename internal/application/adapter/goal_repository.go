// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/domain/entity"
)

// IndividualGoalRepository defines the interface for individual goal persistence.
type IndividualGoalRepository interface {
	// Upsert atomically inserts the goal or, when a goal already exists
	// for (seller, company, month), updates its target amount in place.
	// The storage layer's uniqueness constraint serializes concurrent
	// definitions; callers never race a read against a write.
	Upsert(ctx context.Context, goal *entity.IndividualGoal) (*entity.IndividualGoal, error)

	// FindByID retrieves an individual goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IndividualGoal, error)

	// FindBySellerAndMonth retrieves the goal for (seller, month), or nil
	// when none is defined.
	FindBySellerAndMonth(ctx context.Context, sellerID uuid.UUID, referenceMonth time.Time) (*entity.IndividualGoal, error)

	// ListByCompanyAndMonth retrieves all individual goals of a company
	// for the given month.
	ListByCompanyAndMonth(ctx context.Context, companyID uuid.UUID, referenceMonth time.Time) ([]*entity.IndividualGoal, error)

	// Delete removes an individual goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConsolidatedGoalRepository defines the interface for consolidated goal persistence.
type ConsolidatedGoalRepository interface {
	// Upsert atomically inserts or updates the goal for (company, month).
	Upsert(ctx context.Context, goal *entity.ConsolidatedGoal) (*entity.ConsolidatedGoal, error)

	// FindByID retrieves a consolidated goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ConsolidatedGoal, error)

	// FindByCompanyAndMonth retrieves the goal for (company, month), or
	// nil when none is defined.
	FindByCompanyAndMonth(ctx context.Context, companyID uuid.UUID, referenceMonth time.Time) (*entity.ConsolidatedGoal, error)

	// Delete removes a consolidated goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
