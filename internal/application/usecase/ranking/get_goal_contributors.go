// Package ranking contains leaderboard use cases.
package ranking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/domain/valueobject"
)

// MaxContributors is how many top sellers are shown behind a
// consolidated goal.
const MaxContributors = 3

// GetGoalContributorsInput represents the input for listing a
// consolidated goal's top contributors.
type GetGoalContributorsInput struct {
	GoalID         uuid.UUID
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
}

// GetGoalContributorsOutput represents the output of a contributor listing.
type GetGoalContributorsOutput struct {
	GoalID       uuid.UUID
	Month        string
	Contributors []*entity.GoalContributor
}

// GetGoalContributorsUseCase lists the sellers with the largest realized
// amounts inside a consolidated goal's own month window.
type GetGoalContributorsUseCase struct {
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository
	profileRepo          adapter.ProfileRepository
	saleRepo             adapter.SaleRepository
}

// NewGetGoalContributorsUseCase creates a new GetGoalContributorsUseCase instance.
func NewGetGoalContributorsUseCase(
	consolidatedGoalRepo adapter.ConsolidatedGoalRepository,
	profileRepo adapter.ProfileRepository,
	saleRepo adapter.SaleRepository,
) *GetGoalContributorsUseCase {
	return &GetGoalContributorsUseCase{
		consolidatedGoalRepo: consolidatedGoalRepo,
		profileRepo:          profileRepo,
		saleRepo:             saleRepo,
	}
}

// Execute re-aggregates the goal's month and returns the top sellers.
// Sellers with zero realized sales are omitted here; an empty list is a
// valid answer for a quiet month.
func (uc *GetGoalContributorsUseCase) Execute(ctx context.Context, input GetGoalContributorsInput) (*GetGoalContributorsOutput, error) {
	goal, err := uc.consolidatedGoalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find consolidated goal: %w", err)
	}

	if input.ActorRole != entity.RoleSuperAdmin && goal.CompanyID != input.ActorCompanyID {
		return nil, domainerror.NewRankingError(
			domainerror.ErrCodeNotAuthorizedForCompany,
			"not authorized for company",
			domainerror.ErrNotAuthorizedForCompany,
		)
	}

	monthRef := valueobject.MonthRefOf(goal.ReferenceMonth)
	start, end := monthRef.Window()

	sales, err := uc.saleRepo.ListByCompany(ctx, goal.CompanyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	realized := entity.RealizedTotalsBySeller(sales, start, end)

	profiles, err := uc.profileRepo.ListRankable(ctx, goal.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	contributors := make([]*entity.GoalContributor, 0, len(profiles))
	for _, p := range profiles {
		amount, ok := realized[p.ID]
		if !ok || amount.IsZero() {
			continue
		}
		contributors = append(contributors, &entity.GoalContributor{
			SellerID:       p.ID,
			DisplayName:    p.Name,
			AvatarURL:      p.AvatarURL,
			RealizedAmount: amount,
		})
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].RealizedAmount.GreaterThan(contributors[j].RealizedAmount)
	})
	if len(contributors) > MaxContributors {
		contributors = contributors[:MaxContributors]
	}

	return &GetGoalContributorsOutput{
		GoalID:       goal.ID,
		Month:        monthRef.String(),
		Contributors: contributors,
	}, nil
}
