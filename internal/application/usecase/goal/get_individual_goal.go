// Package goal contains monthly goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/domain/valueobject"
)

// GetIndividualGoalInput represents the input for fetching a seller's
// goal and progress for one month.
type GetIndividualGoalInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	SellerID       uuid.UUID // zero value means the actor's own goal
	ReferenceMonth string    // "YYYY-MM"; empty means the current month
}

// GetIndividualGoalOutput represents the output of an individual goal read.
type GetIndividualGoalOutput struct {
	Goal *IndividualGoalOutput
}

// GetIndividualGoalUseCase handles individual goal reads.
type GetIndividualGoalUseCase struct {
	individualGoalRepo adapter.IndividualGoalRepository
	profileRepo        adapter.ProfileRepository
	saleRepo           adapter.SaleRepository
}

// NewGetIndividualGoalUseCase creates a new GetIndividualGoalUseCase instance.
func NewGetIndividualGoalUseCase(
	individualGoalRepo adapter.IndividualGoalRepository,
	profileRepo adapter.ProfileRepository,
	saleRepo adapter.SaleRepository,
) *GetIndividualGoalUseCase {
	return &GetIndividualGoalUseCase{
		individualGoalRepo: individualGoalRepo,
		profileRepo:        profileRepo,
		saleRepo:           saleRepo,
	}
}

// Execute fetches the goal for (seller, month) and derives its progress
// from the seller's approved sales in that month's window.
func (uc *GetIndividualGoalUseCase) Execute(ctx context.Context, input GetIndividualGoalInput) (*GetIndividualGoalOutput, error) {
	sellerID := input.SellerID
	if sellerID == uuid.Nil {
		sellerID = input.ActorID
	}

	seller, err := uc.profileRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingSeller,
			"seller not found",
			domainerror.ErrMissingSeller,
		)
	}

	// Sellers read their own goal; reading someone else's requires
	// management rights on that seller's company.
	if sellerID != input.ActorID && !canManage(input.ActorRole, input.ActorCompanyID, seller.CompanyID) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotAuthorizedToManageGoals,
			"not authorized to view this goal",
			domainerror.ErrNotAuthorizedToManageGoals,
		)
	}

	monthRef, err := resolveMonth(input.ReferenceMonth)
	if err != nil {
		return nil, err
	}

	goal, err := uc.individualGoalRepo.FindBySellerAndMonth(ctx, sellerID, monthRef.FirstDay())
	if err != nil {
		return nil, fmt.Errorf("failed to find individual goal: %w", err)
	}
	if goal == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"no goal defined for this month",
			domainerror.ErrGoalNotFound,
		)
	}

	start, end := monthRef.Window()
	sales, err := uc.saleRepo.ListBySeller(ctx, sellerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	progress := valueobject.NewGoalProgress(
		goal.TargetAmount,
		entity.RealizedTotal(sales, start, end),
		valueobject.DefaultIndividualSuperTargetPercent,
	)

	return &GetIndividualGoalOutput{
		Goal: toIndividualGoalOutput(goal, seller.Name, toProgressOutput(progress)),
	}, nil
}
