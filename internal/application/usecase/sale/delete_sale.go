// Package sale contains sales-ledger use cases.
package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
)

// DeleteSaleInput represents the input for sale deletion.
type DeleteSaleInput struct {
	SaleID         uuid.UUID
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
}

// DeleteSaleOutput represents the output of sale deletion.
type DeleteSaleOutput struct {
	Message string
}

// DeleteSaleUseCase handles sale deletion logic.
type DeleteSaleUseCase struct {
	saleRepo       adapter.SaleRepository
	aggregateCache adapter.AggregateCache
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(
	saleRepo adapter.SaleRepository,
	aggregateCache adapter.AggregateCache,
) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo:       saleRepo,
		aggregateCache: aggregateCache,
	}
}

// Execute soft-deletes a sale. Sellers may remove their own pending
// sales; anything already approved or refunded is admin territory.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) (*DeleteSaleOutput, error) {
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

	if !uc.canDelete(input, sale) {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNotAuthorizedSale,
			"not authorized to delete this sale",
			domainerror.ErrNotAuthorizedToModifySale,
		)
	}

	if err := uc.saleRepo.Delete(ctx, sale.ID); err != nil {
		return nil, fmt.Errorf("failed to delete sale: %w", err)
	}

	// Approved sales contribute to aggregates; removing one changes them.
	if sale.CountsTowardGoals() {
		invalidateSaleMonth(ctx, uc.aggregateCache, sale)
	}

	return &DeleteSaleOutput{Message: "Sale deleted successfully"}, nil
}

func (uc *DeleteSaleUseCase) canDelete(input DeleteSaleInput, sale *entity.Sale) bool {
	if canManage(input.ActorRole, input.ActorCompanyID, sale.CompanyID) {
		return true
	}
	return sale.SellerID == input.ActorID && sale.Status == entity.SaleStatusPending
}
