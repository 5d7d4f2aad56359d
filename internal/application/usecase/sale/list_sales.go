// Package sale contains sales-ledger use cases.
package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/domain/valueobject"
)

// SaleOutput represents sale data in use case outputs.
type SaleOutput struct {
	ID         uuid.UUID
	SellerID   uuid.UUID
	SellerName string
	CompanyID  uuid.UUID
	Amount     decimal.Decimal
	Product    string
	Status     entity.SaleStatus
	SaleDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// toSaleOutput maps a sale entity into the output representation.
func toSaleOutput(sale *entity.Sale, sellerName string) *SaleOutput {
	return &SaleOutput{
		ID:         sale.ID,
		SellerID:   sale.SellerID,
		SellerName: sellerName,
		CompanyID:  sale.CompanyID,
		Amount:     sale.Amount,
		Product:    sale.Product,
		Status:     sale.Status,
		SaleDate:   sale.SaleDate,
		CreatedAt:  sale.CreatedAt,
		UpdatedAt:  sale.UpdatedAt,
	}
}

// ListSalesInput represents the input for sale listing.
type ListSalesInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	CompanyID      uuid.UUID  // superadmin override; ignored for other roles
	SellerID       *uuid.UUID // optional filter
	Month          string     // "YYYY-MM"; empty means the current month
}

// ListSalesOutput represents the output of sale listing.
type ListSalesOutput struct {
	Sales         []*SaleOutput
	Month         string
	TotalApproved decimal.Decimal
	TotalPending  decimal.Decimal
}

// ListSalesUseCase handles sale listing logic.
type ListSalesUseCase struct {
	saleRepo    adapter.SaleRepository
	profileRepo adapter.ProfileRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(
	saleRepo adapter.SaleRepository,
	profileRepo adapter.ProfileRepository,
) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo:    saleRepo,
		profileRepo: profileRepo,
	}
}

// Execute lists the company's sales for one month. Sellers only see
// their own sales; admins see the whole company.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	companyID, err := resolveCompanyScope(input.ActorRole, input.ActorCompanyID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	monthRef, err := resolveMonth(input.Month)
	if err != nil {
		return nil, err
	}
	start, end := monthRef.Window()

	var sales []*entity.Sale
	switch {
	case input.ActorRole == entity.RoleSeller:
		// Sellers are confined to their own ledger.
		sales, err = uc.saleRepo.ListBySeller(ctx, input.ActorID, start, end)
	case input.SellerID != nil:
		sales, err = uc.saleRepo.ListBySeller(ctx, *input.SellerID, start, end)
	default:
		sales, err = uc.saleRepo.ListByCompany(ctx, companyID, start, end)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	names := uc.sellerNames(ctx, companyID)

	output := &ListSalesOutput{
		Sales:         make([]*SaleOutput, 0, len(sales)),
		Month:         monthRef.String(),
		TotalApproved: decimal.Zero,
		TotalPending:  decimal.Zero,
	}
	for _, s := range sales {
		if s.CompanyID != companyID {
			continue
		}
		output.Sales = append(output.Sales, toSaleOutput(s, names[s.SellerID]))
		switch s.Status {
		case entity.SaleStatusApproved:
			output.TotalApproved = output.TotalApproved.Add(s.Amount)
		case entity.SaleStatusPending:
			output.TotalPending = output.TotalPending.Add(s.Amount)
		}
	}

	return output, nil
}

// sellerNames loads a display-name index for the company. A lookup
// failure degrades to empty names rather than failing the listing.
func (uc *ListSalesUseCase) sellerNames(ctx context.Context, companyID uuid.UUID) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	profiles, err := uc.profileRepo.ListRankable(ctx, companyID)
	if err != nil {
		return names
	}
	for _, p := range profiles {
		names[p.ID] = p.Name
	}
	return names
}

// resolveCompanyScope picks the company a read operates on. Superadmins
// may target any company explicitly; everyone else is pinned to their own.
func resolveCompanyScope(role entity.ProfileRole, actorCompanyID, requested uuid.UUID) (uuid.UUID, error) {
	if role == entity.RoleSuperAdmin {
		if requested != uuid.Nil {
			return requested, nil
		}
		return uuid.Nil, domainerror.NewRankingError(
			domainerror.ErrCodeMissingCompanyScope,
			"company scope is required",
			domainerror.ErrMissingCompanyScope,
		)
	}
	if requested != uuid.Nil && requested != actorCompanyID {
		return uuid.Nil, domainerror.NewRankingError(
			domainerror.ErrCodeNotAuthorizedForCompany,
			"not authorized for company",
			domainerror.ErrNotAuthorizedForCompany,
		)
	}
	if actorCompanyID == uuid.Nil {
		return uuid.Nil, domainerror.NewRankingError(
			domainerror.ErrCodeMissingCompanyScope,
			"company scope is required",
			domainerror.ErrMissingCompanyScope,
		)
	}
	return actorCompanyID, nil
}

// resolveMonth parses the optional month filter, defaulting to the
// current calendar month.
func resolveMonth(month string) (valueobject.MonthRef, error) {
	if month == "" {
		return valueobject.MonthRefOf(time.Now().UTC()), nil
	}
	ref, err := valueobject.ParseMonthRef(month)
	if err != nil {
		return valueobject.MonthRef{}, domainerror.NewRankingError(
			domainerror.ErrCodeInvalidRankingMonth,
			"reference month must match YYYY-MM",
			domainerror.ErrInvalidRankingMonth,
		)
	}
	return ref, nil
}
