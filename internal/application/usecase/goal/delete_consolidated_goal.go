// Package goal contains monthly goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/domain/valueobject"
)

// DeleteConsolidatedGoalInput represents the input for consolidated goal deletion.
type DeleteConsolidatedGoalInput struct {
	GoalID         uuid.UUID
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
}

// DeleteConsolidatedGoalOutput represents the output of consolidated goal deletion.
type DeleteConsolidatedGoalOutput struct {
	Message string
}

// DeleteConsolidatedGoalUseCase handles consolidated goal deletion logic.
type DeleteConsolidatedGoalUseCase struct {
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository
	aggregateCache       adapter.AggregateCache
}

// NewDeleteConsolidatedGoalUseCase creates a new DeleteConsolidatedGoalUseCase instance.
func NewDeleteConsolidatedGoalUseCase(
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository,
	aggregateCache adapter.AggregateCache,
) *DeleteConsolidatedGoalUseCase {
	return &DeleteConsolidatedGoalUseCase{
		consolidatedGoalRepo: consolidatedGoalRepo,
		aggregateCache:       aggregateCache,
	}
}

// Execute removes a consolidated goal definition.
func (uc *DeleteConsolidatedGoalUseCase) Execute(ctx context.Context, input DeleteConsolidatedGoalInput) (*DeleteConsolidatedGoalOutput, error) {
	goal, err := uc.consolidatedGoalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find consolidated goal: %w", err)
	}

	if !canManage(input.ActorRole, input.ActorCompanyID, goal.CompanyID) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotAuthorizedToManageGoals,
			"not authorized to manage goals",
			domainerror.ErrNotAuthorizedToManageGoals,
		)
	}

	if err := uc.consolidatedGoalRepo.Delete(ctx, goal.ID); err != nil {
		return nil, fmt.Errorf("failed to delete consolidated goal: %w", err)
	}

	invalidateGoalMonth(ctx, uc.aggregateCache, goal.CompanyID, valueobject.MonthRefOf(goal.ReferenceMonth))

	return &DeleteConsolidatedGoalOutput{Message: "Goal deleted successfully"}, nil
}
