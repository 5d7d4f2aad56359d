// Package ranking contains leaderboard use cases.
package ranking

import (
	"context"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/domain/entity"
)

// PodiumSize is the number of sellers on the celebratory podium.
const PodiumSize = 3

// GetPodiumInput represents the input for the monthly podium.
type GetPodiumInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	CompanyID      uuid.UUID
	Month          string
}

// GetPodiumOutput represents the output of the monthly podium.
type GetPodiumOutput struct {
	Month     string
	CompanyID uuid.UUID
	Podium    []*entity.RankingEntry
}

// GetPodiumUseCase returns the top of the monthly leaderboard.
type GetPodiumUseCase struct {
	getRanking *GetRankingUseCase
}

// NewGetPodiumUseCase creates a new GetPodiumUseCase instance.
func NewGetPodiumUseCase(getRanking *GetRankingUseCase) *GetPodiumUseCase {
	return &GetPodiumUseCase{getRanking: getRanking}
}

// Execute returns the top three leaderboard entries. A company with
// fewer rankable sellers yields a shorter podium, never an error.
func (uc *GetPodiumUseCase) Execute(ctx context.Context, input GetPodiumInput) (*GetPodiumOutput, error) {
	ranking, err := uc.getRanking.Execute(ctx, GetRankingInput(input))
	if err != nil {
		return nil, err
	}

	podium := ranking.Entries
	if len(podium) > PodiumSize {
		podium = podium[:PodiumSize]
	}

	return &GetPodiumOutput{
		Month:     ranking.Month,
		CompanyID: ranking.CompanyID,
		Podium:    podium,
	}, nil
}
