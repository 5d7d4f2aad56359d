// Package goal contains monthly goal use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/domain/valueobject"
)

// SetIndividualGoalInput represents the input for defining a seller's
// monthly target.
type SetIndividualGoalInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	SellerID       uuid.UUID
	ReferenceMonth string // "YYYY-MM"
	TargetAmount   decimal.Decimal
}

// SetIndividualGoalOutput represents the output of an individual goal
// definition.
type SetIndividualGoalOutput struct {
	Goal *IndividualGoalOutput
}

// SetIndividualGoalUseCase handles individual goal definition logic.
type SetIndividualGoalUseCase struct {
	individualGoalRepo adapter.IndividualGoalRepository
	profileRepo        adapter.ProfileRepository
	aggregateCache     adapter.AggregateCache
}

// NewSetIndividualGoalUseCase creates a new SetIndividualGoalUseCase instance.
func NewSetIndividualGoalUseCase(
	individualGoalRepo adapter.IndividualGoalRepository,
	profileRepo adapter.ProfileRepository,
	aggregateCache adapter.AggregateCache,
) *SetIndividualGoalUseCase {
	return &SetIndividualGoalUseCase{
		individualGoalRepo: individualGoalRepo,
		profileRepo:        profileRepo,
		aggregateCache:     aggregateCache,
	}
}

// Execute defines or redefines the seller's target for one month.
// Defining a goal twice for the same (seller, month) updates the
// existing target in place; the storage layer resolves the write
// atomically so concurrent definitions never produce duplicates.
func (uc *SetIndividualGoalUseCase) Execute(ctx context.Context, input SetIndividualGoalInput) (*SetIndividualGoalOutput, error) {
	if !canManage(input.ActorRole, input.ActorCompanyID, input.ActorCompanyID) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotAuthorizedToManageGoals,
			"not authorized to manage goals",
			domainerror.ErrNotAuthorizedToManageGoals,
		)
	}

	if input.SellerID == uuid.Nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingSeller,
			"seller is required",
			domainerror.ErrMissingSeller,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
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

	seller, err := uc.profileRepo.FindByID(ctx, input.SellerID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingSeller,
			"seller not found",
			domainerror.ErrMissingSeller,
		)
	}

	if seller.CompanyID != input.ActorCompanyID && input.ActorRole != entity.RoleSuperAdmin {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeSellerNotInCompany,
			"seller does not belong to company",
			domainerror.ErrSellerNotInCompany,
		)
	}

	goal := entity.NewIndividualGoal(seller.ID, seller.CompanyID, monthRef.FirstDay(), input.TargetAmount)

	saved, err := uc.individualGoalRepo.Upsert(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert individual goal: %w", err)
	}

	invalidateGoalMonth(ctx, uc.aggregateCache, saved.CompanyID, monthRef)

	return &SetIndividualGoalOutput{
		Goal: toIndividualGoalOutput(saved, seller.Name, nil),
	}, nil
}

// canManage reports whether the actor role may manage the target company.
func canManage(role entity.ProfileRole, actorCompanyID, companyID uuid.UUID) bool {
	if role == entity.RoleSuperAdmin {
		return true
	}
	return role == entity.RoleAdmin && actorCompanyID == companyID
}

// invalidateGoalMonth drops the cached aggregates after a goal mutation.
// Cache failures are logged and swallowed.
func invalidateGoalMonth(ctx context.Context, cache adapter.AggregateCache, companyID uuid.UUID, month valueobject.MonthRef) {
	if err := cache.InvalidateMonth(ctx, companyID, month.String()); err != nil {
		slog.Warn("Failed to invalidate aggregate cache",
			"companyID", companyID,
			"month", month.String(),
			"error", err,
		)
	}
}

// monthString renders the goal's reference month back into "YYYY-MM".
func monthString(referenceMonth time.Time) string {
	return valueobject.MonthRefOf(referenceMonth).String()
}
