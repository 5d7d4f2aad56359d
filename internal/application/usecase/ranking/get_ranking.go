// Package ranking contains leaderboard use cases.
package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/domain/valueobject"
)

// GetRankingInput represents the input for the monthly leaderboard.
type GetRankingInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	CompanyID      uuid.UUID // superadmin override
	Month          string    // "YYYY-MM"; empty means the current month
}

// GetRankingOutput represents the output of the monthly leaderboard.
type GetRankingOutput struct {
	Month     string
	CompanyID uuid.UUID
	Entries   []*entity.RankingEntry
}

// GetRankingUseCase derives the monthly leaderboard from the raw ledger.
type GetRankingUseCase struct {
	profileRepo          adapter.ProfileRepository
	saleRepo             adapter.SaleRepository
	individualGoalRepo   adapter.IndividualGoalRepository
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository
	aggregateCache       adapter.AggregateCache
}

// NewGetRankingUseCase creates a new GetRankingUseCase instance.
func NewGetRankingUseCase(
	profileRepo adapter.ProfileRepository,
	saleRepo adapter.SaleRepository,
	individualGoalRepo adapter.IndividualGoalRepository,
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository,
	aggregateCache adapter.AggregateCache,
) *GetRankingUseCase {
	return &GetRankingUseCase{
		profileRepo:          profileRepo,
		saleRepo:             saleRepo,
		individualGoalRepo:   individualGoalRepo,
		consolidatedGoalRepo: consolidatedGoalRepo,
		aggregateCache:       aggregateCache,
	}
}

// Execute builds the leaderboard for (company, month). Every rankable
// seller appears, including those with zero realized sales. The sort is
// stable descending on realized amount, so ties keep the repository's
// oldest-account-first order and reruns over the same data never
// reshuffle positions.
func (uc *GetRankingUseCase) Execute(ctx context.Context, input GetRankingInput) (*GetRankingOutput, error) {
	companyID, err := resolveCompanyScope(input.ActorRole, input.ActorCompanyID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	monthRef, err := resolveMonth(input.Month)
	if err != nil {
		return nil, err
	}

	var cached GetRankingOutput
	hit, cacheErr := uc.aggregateCache.Get(ctx, adapter.CacheKindRanking, companyID, monthRef.String(), &cached)
	if cacheErr != nil {
		slog.Warn("Failed to read aggregate cache",
			"kind", adapter.CacheKindRanking,
			"companyID", companyID,
			"month", monthRef.String(),
			"error", cacheErr,
		)
	} else if hit {
		return &cached, nil
	}

	output, err := uc.compute(ctx, companyID, monthRef)
	if err != nil {
		return nil, err
	}

	if err := uc.aggregateCache.Set(ctx, adapter.CacheKindRanking, companyID, monthRef.String(), output); err != nil {
		slog.Warn("Failed to write aggregate cache",
			"kind", adapter.CacheKindRanking,
			"companyID", companyID,
			"month", monthRef.String(),
			"error", err,
		)
	}

	return output, nil
}

func (uc *GetRankingUseCase) compute(ctx context.Context, companyID uuid.UUID, monthRef valueobject.MonthRef) (*GetRankingOutput, error) {
	profiles, err := uc.profileRepo.ListRankable(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	start, end := monthRef.Window()
	sales, err := uc.saleRepo.ListByCompany(ctx, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	realized := entity.RealizedTotalsBySeller(sales, start, end)

	goals, err := uc.individualGoalRepo.ListByCompanyAndMonth(ctx, companyID, monthRef.FirstDay())
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	goalBySeller := make(map[uuid.UUID]*entity.IndividualGoal, len(goals))
	for _, g := range goals {
		goalBySeller[g.SellerID] = g
	}

	consolidated, err := uc.consolidatedGoalRepo.FindByCompanyAndMonth(ctx, companyID, monthRef.FirstDay())
	if err != nil {
		return nil, fmt.Errorf("failed to find consolidated goal: %w", err)
	}

	entries := make([]*entity.RankingEntry, 0, len(profiles))
	for _, p := range profiles {
		amount, ok := realized[p.ID]
		if !ok {
			amount = decimal.Zero
		}

		entry := &entity.RankingEntry{
			SellerID:       p.ID,
			DisplayName:    p.Name,
			AvatarURL:      p.AvatarURL,
			Level:          p.DisplayLevel(),
			RealizedAmount: amount,
		}

		// A percent is only meaningful against a positive target. No
		// goal means no percent, which presentation renders as "no
		// goal" rather than 0%.
		if g := goalBySeller[p.ID]; g != nil && g.TargetAmount.IsPositive() {
			goalAmount := g.TargetAmount
			percent := percentOf(amount, g.TargetAmount)
			entry.IndividualGoalAmount = &goalAmount
			entry.PercentOfIndividualGoal = &percent
		}

		if consolidated != nil && consolidated.TargetAmount.IsPositive() {
			percent := percentOf(amount, consolidated.TargetAmount)
			entry.PercentOfConsolidatedGoal = &percent
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].RealizedAmount.GreaterThan(entries[j].RealizedAmount)
	})
	for i, e := range entries {
		e.RankPosition = i + 1
	}

	return &GetRankingOutput{
		Month:     monthRef.String(),
		CompanyID: companyID,
		Entries:   entries,
	}, nil
}

// percentOf returns amount as a percentage of a positive target.
func percentOf(amount, target decimal.Decimal) float64 {
	p, _ := amount.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	return p
}

// resolveCompanyScope picks the company a leaderboard read operates on.
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
