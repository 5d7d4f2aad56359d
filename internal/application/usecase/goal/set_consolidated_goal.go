// Package goal contains monthly goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/domain/valueobject"
)

const (
	// MaxGoalDescriptionLength is the maximum allowed length for
	// consolidated goal descriptions.
	MaxGoalDescriptionLength = 500
)

// SetConsolidatedGoalInput represents the input for defining a
// company-wide monthly target.
type SetConsolidatedGoalInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	CompanyID      uuid.UUID // superadmin override
	ReferenceMonth string    // "YYYY-MM"
	TargetAmount   decimal.Decimal
	Description    string
	TargetProduct  string
}

// SetConsolidatedGoalOutput represents the output of a consolidated goal
// definition.
type SetConsolidatedGoalOutput struct {
	Goal *ConsolidatedGoalOutput
}

// SetConsolidatedGoalUseCase handles consolidated goal definition logic.
type SetConsolidatedGoalUseCase struct {
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository
	aggregateCache       adapter.AggregateCache
}

// NewSetConsolidatedGoalUseCase creates a new SetConsolidatedGoalUseCase instance.
func NewSetConsolidatedGoalUseCase(
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository,
	aggregateCache adapter.AggregateCache,
) *SetConsolidatedGoalUseCase {
	return &SetConsolidatedGoalUseCase{
		consolidatedGoalRepo: consolidatedGoalRepo,
		aggregateCache:       aggregateCache,
	}
}

// Execute defines or redefines the company's target for one month. Like
// individual goals, the write is an atomic upsert on (company, month).
func (uc *SetConsolidatedGoalUseCase) Execute(ctx context.Context, input SetConsolidatedGoalInput) (*SetConsolidatedGoalOutput, error) {
	companyID, err := resolveCompanyScope(input.ActorRole, input.ActorCompanyID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	if !canManage(input.ActorRole, input.ActorCompanyID, companyID) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotAuthorizedToManageGoals,
			"not authorized to manage goals",
			domainerror.ErrNotAuthorizedToManageGoals,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if len(input.Description) > MaxGoalDescriptionLength {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			fmt.Sprintf("description must not exceed %d characters", MaxGoalDescriptionLength),
			nil,
		)
	}

	monthRef, err := valueobject.ParseMonthRef(input.ReferenceMonth)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidReferenceMonth,
			"reference month must match YYYY-MM",
			domainerror.ErrInvalidReferenceMonth,
		)
	}

	goal := entity.NewConsolidatedGoal(companyID, monthRef.FirstDay(), input.TargetAmount, input.Description, input.TargetProduct)

	saved, err := uc.consolidatedGoalRepo.Upsert(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert consolidated goal: %w", err)
	}

	invalidateGoalMonth(ctx, uc.aggregateCache, companyID, monthRef)

	return &SetConsolidatedGoalOutput{
		Goal: toConsolidatedGoalOutput(saved, nil),
	}, nil
}
