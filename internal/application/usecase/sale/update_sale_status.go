// Package sale contains sales-ledger use cases.
package sale

import (
	"context"
	"errors"
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

// UpdateSaleStatusInput represents the input for sale status changes.
type UpdateSaleStatusInput struct {
	SaleID         uuid.UUID
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	Status         entity.SaleStatus
}

// UpdateSaleStatusOutput represents the output of a sale status change.
type UpdateSaleStatusOutput struct {
	Sale *SaleOutput
}

// UpdateSaleStatusUseCase handles approval and refund of ledger entries.
type UpdateSaleStatusUseCase struct {
	saleRepo           adapter.SaleRepository
	profileRepo        adapter.ProfileRepository
	individualGoalRepo adapter.IndividualGoalRepository
	emailService       adapter.EmailService
	aggregateCache     adapter.AggregateCache
}

// NewUpdateSaleStatusUseCase creates a new UpdateSaleStatusUseCase instance.
func NewUpdateSaleStatusUseCase(
	saleRepo adapter.SaleRepository,
	profileRepo adapter.ProfileRepository,
	individualGoalRepo adapter.IndividualGoalRepository,
	emailService adapter.EmailService,
	aggregateCache adapter.AggregateCache,
) *UpdateSaleStatusUseCase {
	return &UpdateSaleStatusUseCase{
		saleRepo:           saleRepo,
		profileRepo:        profileRepo,
		individualGoalRepo: individualGoalRepo,
		emailService:       emailService,
		aggregateCache:     aggregateCache,
	}
}

// Execute changes a sale's approval state. Only approved sales count
// toward realized amounts, so any transition in or out of approved
// invalidates the month's cached aggregates. Crossing the seller's
// monthly goal queues a congratulation email.
func (uc *UpdateSaleStatusUseCase) Execute(ctx context.Context, input UpdateSaleStatusInput) (*UpdateSaleStatusOutput, error) {
	if !entity.ValidSaleStatus(input.Status) {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleStatus,
			"sale status must be 'approved', 'pending' or 'refunded'",
			domainerror.ErrInvalidSaleStatus,
		)
	}

	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleNotFound,
				"sale not found",
				domainerror.ErrSaleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	if !canManage(input.ActorRole, input.ActorCompanyID, sale.CompanyID) {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNotAuthorizedSale,
			"not authorized to change this sale",
			domainerror.ErrNotAuthorizedToModifySale,
		)
	}

	previousStatus := sale.Status
	sale.Status = input.Status
	sale.UpdatedAt = time.Now().UTC()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	countsChanged := (previousStatus == entity.SaleStatusApproved) != (input.Status == entity.SaleStatusApproved)
	if countsChanged {
		invalidateSaleMonth(ctx, uc.aggregateCache, sale)
	}

	seller, err := uc.profileRepo.FindByID(ctx, sale.SellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seller: %w", err)
	}

	if countsChanged && input.Status == entity.SaleStatusApproved {
		uc.notifyIfGoalReached(ctx, sale, seller)
	}

	return &UpdateSaleStatusOutput{Sale: toSaleOutput(sale, seller.Name)}, nil
}

// notifyIfGoalReached queues a congratulation email when this approval
// pushed the seller's realized amount across their monthly target.
// Notification is best effort and never fails the approval.
func (uc *UpdateSaleStatusUseCase) notifyIfGoalReached(ctx context.Context, sale *entity.Sale, seller *entity.Profile) {
	monthRef := valueobject.MonthRefOf(sale.SaleDate)

	goal, err := uc.individualGoalRepo.FindBySellerAndMonth(ctx, sale.SellerID, monthRef.FirstDay())
	if err != nil || goal == nil || !goal.TargetAmount.IsPositive() {
		return
	}

	start, end := monthRef.Window()
	sales, err := uc.saleRepo.ListBySeller(ctx, sale.SellerID, start, end)
	if err != nil {
		slog.Warn("Failed to recompute realized amount for goal notification",
			"sellerID", sale.SellerID,
			"month", monthRef.String(),
			"error", err,
		)
		return
	}

	realized := entity.RealizedTotal(sales, start, end)
	before := realized.Sub(sale.Amount)

	// Only the approval that crosses the line triggers the email; later
	// approvals in the same month stay silent.
	if before.GreaterThanOrEqual(goal.TargetAmount) || realized.LessThan(goal.TargetAmount) {
		return
	}

	progress := valueobject.NewGoalProgress(goal.TargetAmount, realized, valueobject.DefaultIndividualSuperTargetPercent)

	err = uc.emailService.QueueGoalAchievedEmail(ctx, adapter.QueueGoalAchievedInput{
		SellerEmail:    seller.Email,
		SellerName:     seller.Name,
		ReferenceMonth: monthRef.String(),
		TargetAmount:   goal.TargetAmount.StringFixed(2),
		RealizedAmount: realized.StringFixed(2),
		Percent:        decimal.NewFromFloat(progress.Percent).StringFixed(1),
		SuperTarget:    progress.Status == valueobject.TierSuperTarget,
	})
	if err != nil {
		slog.Warn("Failed to queue goal achievement email",
			"sellerID", seller.ID,
			"month", monthRef.String(),
			"error", err,
		)
	}
}
