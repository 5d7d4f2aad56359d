// Package dashboard contains company dashboard use cases.
package dashboard

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

// GetTeamHealthInput represents the input for the team health rollup.
type GetTeamHealthInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	CompanyID      uuid.UUID // superadmin override
	Month          string    // "YYYY-MM"; empty means the current month
}

// ConsolidatedHealthOutput is the company-goal slice of the rollup. It
// is nil when the month has no consolidated goal.
type ConsolidatedHealthOutput struct {
	TargetAmount  decimal.Decimal
	Percent       float64
	VisualPercent float64
	Shortfall     decimal.Decimal
	Status        valueobject.StatusTier
}

// GetTeamHealthOutput represents the output of the team health rollup.
type GetTeamHealthOutput struct {
	Month           string
	CompanyID       uuid.UUID
	TeamRealized    decimal.Decimal
	SellerCount     int
	SellersWithGoal int
	SellersOnTarget int
	// TotalTarget sums the month's individual goal targets.
	TotalTarget decimal.Decimal
	// TeamProgressPercent is TeamRealized against TotalTarget, 0 when no
	// seller has a goal.
	TeamProgressPercent float64
	// AveragePercent is the mean goal percent across sellers that have a
	// positive goal, 0 when none do.
	AveragePercent float64
	Consolidated   *ConsolidatedHealthOutput
}

// GetTeamHealthUseCase rolls up a company's month into one health view.
type GetTeamHealthUseCase struct {
	profileRepo          adapter.ProfileRepository
	saleRepo             adapter.SaleRepository
	individualGoalRepo   adapter.IndividualGoalRepository
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository
	aggregateCache       adapter.AggregateCache
}

// NewGetTeamHealthUseCase creates a new GetTeamHealthUseCase instance.
func NewGetTeamHealthUseCase(
	profileRepo adapter.ProfileRepository,
	saleRepo adapter.SaleRepository,
	individualGoalRepo adapter.IndividualGoalRepository,
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository,
	aggregateCache adapter.AggregateCache,
) *GetTeamHealthUseCase {
	return &GetTeamHealthUseCase{
		profileRepo:          profileRepo,
		saleRepo:             saleRepo,
		individualGoalRepo:   individualGoalRepo,
		consolidatedGoalRepo: consolidatedGoalRepo,
		aggregateCache:       aggregateCache,
	}
}

// Execute derives the rollup for (company, month): team realized total,
// consolidated goal progress and how the sellers are tracking against
// their individual goals. Everything is recomputed from the raw ledger;
// the short-lived cache only bounds repeated dashboard polling.
func (uc *GetTeamHealthUseCase) Execute(ctx context.Context, input GetTeamHealthInput) (*GetTeamHealthOutput, error) {
	companyID, err := resolveCompanyScope(input.ActorRole, input.ActorCompanyID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	monthRef, err := resolveMonth(input.Month)
	if err != nil {
		return nil, err
	}

	var cached GetTeamHealthOutput
	hit, cacheErr := uc.aggregateCache.Get(ctx, adapter.CacheKindTeamHealth, companyID, monthRef.String(), &cached)
	if cacheErr != nil {
		slog.Warn("Failed to read aggregate cache",
			"kind", adapter.CacheKindTeamHealth,
			"companyID", companyID,
			"month", monthRef.String(),
			"error", cacheErr,
		)
	} else if hit {
		return &cached, nil
	}

	profiles, err := uc.profileRepo.ListRankable(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	start, end := monthRef.Window()
	sales, err := uc.saleRepo.ListByCompany(ctx, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	realizedBySeller := entity.RealizedTotalsBySeller(sales, start, end)
	teamRealized := entity.RealizedTotal(sales, start, end)

	goals, err := uc.individualGoalRepo.ListByCompanyAndMonth(ctx, companyID, monthRef.FirstDay())
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &GetTeamHealthOutput{
		Month:        monthRef.String(),
		CompanyID:    companyID,
		TeamRealized: teamRealized,
		SellerCount:  len(profiles),
		TotalTarget:  decimal.Zero,
	}

	percentSum := 0.0
	for _, g := range goals {
		if !g.TargetAmount.IsPositive() {
			continue
		}
		output.SellersWithGoal++
		output.TotalTarget = output.TotalTarget.Add(g.TargetAmount)
		progress := valueobject.NewGoalProgress(
			g.TargetAmount,
			realizedBySeller[g.SellerID],
			valueobject.DefaultIndividualSuperTargetPercent,
		)
		percentSum += progress.Percent
		if progress.Status != valueobject.TierBelowTarget {
			output.SellersOnTarget++
		}
	}
	if output.SellersWithGoal > 0 {
		output.AveragePercent = percentSum / float64(output.SellersWithGoal)
	}
	if output.TotalTarget.IsPositive() {
		output.TeamProgressPercent, _ = teamRealized.Div(output.TotalTarget).Mul(decimal.NewFromInt(100)).Float64()
	}

	consolidated, err := uc.consolidatedGoalRepo.FindByCompanyAndMonth(ctx, companyID, monthRef.FirstDay())
	if err != nil {
		return nil, fmt.Errorf("failed to find consolidated goal: %w", err)
	}
	if consolidated != nil && consolidated.TargetAmount.IsPositive() {
		progress := valueobject.NewGoalProgress(
			consolidated.TargetAmount,
			teamRealized,
			valueobject.DefaultConsolidatedSuperTargetPercent,
		)
		output.Consolidated = &ConsolidatedHealthOutput{
			TargetAmount:  consolidated.TargetAmount,
			Percent:       progress.Percent,
			VisualPercent: progress.VisualPercent,
			Shortfall:     progress.Shortfall,
			Status:        progress.Status,
		}
	}

	if err := uc.aggregateCache.Set(ctx, adapter.CacheKindTeamHealth, companyID, monthRef.String(), output); err != nil {
		slog.Warn("Failed to write aggregate cache",
			"kind", adapter.CacheKindTeamHealth,
			"companyID", companyID,
			"month", monthRef.String(),
			"error", err,
		)
	}

	return output, nil
}

// resolveCompanyScope picks the company a dashboard read operates on.
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
