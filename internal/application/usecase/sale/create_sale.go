// Package sale contains sales-ledger use cases.
package sale

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

const (
	// MaxProductLength is the maximum allowed length for product names.
	MaxProductLength = 255
)

// CreateSaleInput represents the input for sale creation.
type CreateSaleInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	SellerID       uuid.UUID // zero value means the actor sells for themselves
	Amount         decimal.Decimal
	Product        string
	SaleDate       time.Time
}

// CreateSaleOutput represents the output of sale creation.
type CreateSaleOutput struct {
	Sale *SaleOutput
}

// CreateSaleUseCase handles sale creation logic.
type CreateSaleUseCase struct {
	saleRepo       adapter.SaleRepository
	profileRepo    adapter.ProfileRepository
	aggregateCache adapter.AggregateCache
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(
	saleRepo adapter.SaleRepository,
	profileRepo adapter.ProfileRepository,
	aggregateCache adapter.AggregateCache,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:       saleRepo,
		profileRepo:    profileRepo,
		aggregateCache: aggregateCache,
	}
}

// Execute performs the sale creation. New sales always enter the ledger
// as pending; an admin approves them later.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleAmount,
			"sale amount must not be negative",
			domainerror.ErrInvalidSaleAmount,
		)
	}

	if len(input.Product) > MaxProductLength {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeMissingSaleFields,
			fmt.Sprintf("product must not exceed %d characters", MaxProductLength),
			nil,
		)
	}

	if input.SaleDate.IsZero() {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleDate,
			"sale date is required",
			domainerror.ErrInvalidSaleDate,
		)
	}

	sellerID := input.SellerID
	if sellerID == uuid.Nil {
		sellerID = input.ActorID
	}

	// Registering a sale for someone else requires company management.
	if sellerID != input.ActorID && !canManage(input.ActorRole, input.ActorCompanyID, input.ActorCompanyID) {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNotAuthorizedSale,
			"not authorized to register sales for other sellers",
			domainerror.ErrNotAuthorizedToModifySale,
		)
	}

	seller, err := uc.profileRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeSaleSellerNotFound,
			"seller not found",
			domainerror.ErrSaleSellerNotFound,
		)
	}

	if seller.CompanyID != input.ActorCompanyID && input.ActorRole != entity.RoleSuperAdmin {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNotAuthorizedSale,
			"seller belongs to another company",
			domainerror.ErrNotAuthorizedToModifySale,
		)
	}

	sale := entity.NewSale(seller.ID, seller.CompanyID, input.Amount, input.Product, input.SaleDate)

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	invalidateSaleMonth(ctx, uc.aggregateCache, sale)

	return &CreateSaleOutput{Sale: toSaleOutput(sale, seller.Name)}, nil
}

// canManage reports whether the actor role may manage the target company.
func canManage(role entity.ProfileRole, actorCompanyID, companyID uuid.UUID) bool {
	if role == entity.RoleSuperAdmin {
		return true
	}
	return role == entity.RoleAdmin && actorCompanyID == companyID
}

// invalidateSaleMonth drops the cached aggregates of the sale's month.
// Cache failures are logged and swallowed; the source of truth is the
// ledger, never the cache.
func invalidateSaleMonth(ctx context.Context, cache adapter.AggregateCache, sale *entity.Sale) {
	month := valueobject.MonthRefOf(sale.SaleDate).String()
	if err := cache.InvalidateMonth(ctx, sale.CompanyID, month); err != nil {
		slog.Warn("Failed to invalidate aggregate cache",
			"companyID", sale.CompanyID,
			"month", month,
			"error", err,
		)
	}
}
