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

// DeleteIndividualGoalInput represents the input for individual goal deletion.
type DeleteIndividualGoalInput struct {
	GoalID         uuid.UUID
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
}

// DeleteIndividualGoalOutput represents the output of individual goal deletion.
type DeleteIndividualGoalOutput struct {
	Message string
}

// DeleteIndividualGoalUseCase handles individual goal deletion logic.
type DeleteIndividualGoalUseCase struct {
	individualGoalRepo adapter.IndividualGoalRepository
	aggregateCache     adapter.AggregateCache
}

// NewDeleteIndividualGoalUseCase creates a new DeleteIndividualGoalUseCase instance.
func NewDeleteIndividualGoalUseCase(
	individualGoalRepo adapter.IndividualGoalRepository,
	aggregateCache adapter.AggregateCache,
) *DeleteIndividualGoalUseCase {
	return &DeleteIndividualGoalUseCase{
		individualGoalRepo: individualGoalRepo,
		aggregateCache:     aggregateCache,
	}
}

// Execute removes an individual goal definition.
func (uc *DeleteIndividualGoalUseCase) Execute(ctx context.Context, input DeleteIndividualGoalInput) (*DeleteIndividualGoalOutput, error) {
	goal, err := uc.individualGoalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find individual goal: %w", err)
	}

	if !canManage(input.ActorRole, input.ActorCompanyID, goal.CompanyID) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotAuthorizedToManageGoals,
			"not authorized to manage goals",
			domainerror.ErrNotAuthorizedToManageGoals,
		)
	}

	if err := uc.individualGoalRepo.Delete(ctx, goal.ID); err != nil {
		return nil, fmt.Errorf("failed to delete individual goal: %w", err)
	}

	invalidateGoalMonth(ctx, uc.aggregateCache, goal.CompanyID, valueobject.MonthRefOf(goal.ReferenceMonth))

	return &DeleteIndividualGoalOutput{Message: "Goal deleted successfully"}, nil
}
