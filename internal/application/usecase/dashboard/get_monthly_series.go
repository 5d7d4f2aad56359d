// Package dashboard contains company dashboard use cases.
package dashboard

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

const (
	minSeriesYear = 2000
	maxSeriesYear = 2100
)

// GetMonthlySeriesInput represents the input for the yearly sales series.
type GetMonthlySeriesInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	CompanyID      uuid.UUID // superadmin override
	Year           int       // zero means the current year
}

// MonthlyPoint is one month of the yearly series.
type MonthlyPoint struct {
	Month        string // "YYYY-MM"
	Realized     decimal.Decimal
	TargetAmount *decimal.Decimal // consolidated goal target, nil when undefined
}

// GetMonthlySeriesOutput represents the output of the yearly series.
type GetMonthlySeriesOutput struct {
	Year      int
	CompanyID uuid.UUID
	Points    []*MonthlyPoint
}

// GetMonthlySeriesUseCase builds the month-by-month realized series for
// one calendar year, used by the evolution chart.
type GetMonthlySeriesUseCase struct {
	saleRepo             adapter.SaleRepository
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository
}

// NewGetMonthlySeriesUseCase creates a new GetMonthlySeriesUseCase instance.
func NewGetMonthlySeriesUseCase(
	saleRepo adapter.SaleRepository,
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository,
) *GetMonthlySeriesUseCase {
	return &GetMonthlySeriesUseCase{
		saleRepo:             saleRepo,
		consolidatedGoalRepo: consolidatedGoalRepo,
	}
}

// Execute loads the whole year's ledger once and buckets realized
// amounts per calendar month, pairing each month with its consolidated
// target when one was defined.
func (uc *GetMonthlySeriesUseCase) Execute(ctx context.Context, input GetMonthlySeriesInput) (*GetMonthlySeriesOutput, error) {
	companyID, err := resolveCompanyScope(input.ActorRole, input.ActorCompanyID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	year := input.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	if year < minSeriesYear || year > maxSeriesYear {
		return nil, domainerror.NewRankingError(
			domainerror.ErrCodeInvalidYear,
			fmt.Sprintf("year must be between %d and %d", minSeriesYear, maxSeriesYear),
			domainerror.ErrInvalidYear,
		)
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	sales, err := uc.saleRepo.ListByCompany(ctx, companyID, yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	output := &GetMonthlySeriesOutput{
		Year:      year,
		CompanyID: companyID,
		Points:    make([]*MonthlyPoint, 0, 12),
	}

	for month := time.January; month <= time.December; month++ {
		ref := valueobject.MonthRefOf(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
		start, end := ref.Window()

		point := &MonthlyPoint{
			Month:    ref.String(),
			Realized: entity.RealizedTotal(sales, start, end),
		}

		goal, err := uc.consolidatedGoalRepo.FindByCompanyAndMonth(ctx, companyID, ref.FirstDay())
		if err != nil {
			return nil, fmt.Errorf("failed to find consolidated goal: %w", err)
		}
		if goal != nil {
			target := goal.TargetAmount
			point.TargetAmount = &target
		}

		output.Points = append(output.Points, point)
	}

	return output, nil
}
