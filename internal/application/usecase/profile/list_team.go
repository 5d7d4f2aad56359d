// Package profile contains team member management use cases.
package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
)

// ListTeamInput represents the input for listing a company's team.
type ListTeamInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	CompanyID      uuid.UUID // superadmin override
}

// ListTeamOutput represents the output of the team listing.
type ListTeamOutput struct {
	Members []*entity.Profile
}

// ListTeamUseCase handles team listing logic.
type ListTeamUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewListTeamUseCase creates a new ListTeamUseCase instance.
func NewListTeamUseCase(profileRepo adapter.ProfileRepository) *ListTeamUseCase {
	return &ListTeamUseCase{profileRepo: profileRepo}
}

// Execute lists the rankable members of a company, oldest account first.
func (uc *ListTeamUseCase) Execute(ctx context.Context, input ListTeamInput) (*ListTeamOutput, error) {
	companyID := input.ActorCompanyID
	if input.ActorRole == entity.RoleSuperAdmin {
		companyID = input.CompanyID
	}
	if companyID == uuid.Nil {
		return nil, domainerror.NewRankingError(
			domainerror.ErrCodeMissingCompanyScope,
			"company scope is required",
			domainerror.ErrMissingCompanyScope,
		)
	}

	members, err := uc.profileRepo.ListRankable(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}

	return &ListTeamOutput{Members: members}, nil
}
