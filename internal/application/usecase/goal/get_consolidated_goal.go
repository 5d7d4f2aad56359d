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

// ConsolidatedGoalOutput represents a consolidated goal in use case outputs.
type ConsolidatedGoalOutput struct {
	ID             uuid.UUID
	CompanyID      uuid.UUID
	ReferenceMonth string
	TargetAmount   decimal.Decimal
	Description    string
	TargetProduct  string
	Progress       *ProgressOutput
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// toConsolidatedGoalOutput maps a consolidated goal entity into the
// output representation. progress may be nil when not derived.
func toConsolidatedGoalOutput(goal *entity.ConsolidatedGoal, progress *ProgressOutput) *ConsolidatedGoalOutput {
	return &ConsolidatedGoalOutput{
		ID:             goal.ID,
		CompanyID:      goal.CompanyID,
		ReferenceMonth: monthString(goal.ReferenceMonth),
		TargetAmount:   goal.TargetAmount,
		Description:    goal.Description,
		TargetProduct:  goal.TargetProduct,
		Progress:       progress,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}

// GetConsolidatedGoalInput represents the input for fetching the
// company's goal and progress for one month.
type GetConsolidatedGoalInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	CompanyID      uuid.UUID // superadmin override
	ReferenceMonth string    // "YYYY-MM"; empty means the current month
}

// GetConsolidatedGoalOutput represents the output of a consolidated goal read.
type GetConsolidatedGoalOutput struct {
	Goal *ConsolidatedGoalOutput
}

// GetConsolidatedGoalUseCase handles consolidated goal reads.
type GetConsolidatedGoalUseCase struct {
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository
	saleRepo             adapter.SaleRepository
	aggregateCache       adapter.AggregateCache
}

// NewGetConsolidatedGoalUseCase creates a new GetConsolidatedGoalUseCase instance.
func NewGetConsolidatedGoalUseCase(
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository,
	saleRepo adapter.SaleRepository,
	aggregateCache adapter.AggregateCache,
) *GetConsolidatedGoalUseCase {
	return &GetConsolidatedGoalUseCase{
		consolidatedGoalRepo: consolidatedGoalRepo,
		saleRepo:             saleRepo,
		aggregateCache:       aggregateCache,
	}
}

// Execute fetches the consolidated goal for (company, month) with the
// company-wide progress derived from all approved sales in the window.
// The derived result is cached for a few seconds per (company, month).
func (uc *GetConsolidatedGoalUseCase) Execute(ctx context.Context, input GetConsolidatedGoalInput) (*GetConsolidatedGoalOutput, error) {
	companyID, err := resolveCompanyScope(input.ActorRole, input.ActorCompanyID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	monthRef, err := resolveMonth(input.ReferenceMonth)
	if err != nil {
		return nil, err
	}

	var cached GetConsolidatedGoalOutput
	hit, cacheErr := uc.aggregateCache.Get(ctx, adapter.CacheKindConsolidatedProgress, companyID, monthRef.String(), &cached)
	if cacheErr != nil {
		slog.Warn("Failed to read aggregate cache",
			"kind", adapter.CacheKindConsolidatedProgress,
			"companyID", companyID,
			"month", monthRef.String(),
			"error", cacheErr,
		)
	} else if hit {
		return &cached, nil
	}

	goal, err := uc.consolidatedGoalRepo.FindByCompanyAndMonth(ctx, companyID, monthRef.FirstDay())
	if err != nil {
		return nil, fmt.Errorf("failed to find consolidated goal: %w", err)
	}
	if goal == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"no consolidated goal defined for this month",
			domainerror.ErrGoalNotFound,
		)
	}

	start, end := monthRef.Window()
	sales, err := uc.saleRepo.ListByCompany(ctx, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	progress := valueobject.NewGoalProgress(
		goal.TargetAmount,
		entity.RealizedTotal(sales, start, end),
		valueobject.DefaultConsolidatedSuperTargetPercent,
	)

	output := &GetConsolidatedGoalOutput{
		Goal: toConsolidatedGoalOutput(goal, toProgressOutput(progress)),
	}

	if err := uc.aggregateCache.Set(ctx, adapter.CacheKindConsolidatedProgress, companyID, monthRef.String(), output); err != nil {
		slog.Warn("Failed to write aggregate cache",
			"kind", adapter.CacheKindConsolidatedProgress,
			"companyID", companyID,
			"month", monthRef.String(),
			"error", err,
		)
	}

	return output, nil
}
