// Package profile contains team member management use cases.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
)

// GetMeInput represents the input for reading the caller's own profile.
type GetMeInput struct {
	ActorID uuid.UUID
}

// GetMeOutput represents the output of a self profile read.
type GetMeOutput struct {
	Profile *entity.Profile
}

// GetMeUseCase loads the authenticated member's own profile.
type GetMeUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetMeUseCase creates a new GetMeUseCase instance.
func NewGetMeUseCase(profileRepo adapter.ProfileRepository) *GetMeUseCase {
	return &GetMeUseCase{profileRepo: profileRepo}
}

// Execute returns the profile behind the access token.
func (uc *GetMeUseCase) Execute(ctx context.Context, input GetMeInput) (*GetMeOutput, error) {
	me, err := uc.profileRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"profile not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &GetMeOutput{Profile: me}, nil
}
