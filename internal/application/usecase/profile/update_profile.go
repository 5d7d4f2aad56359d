// Package profile contains team member management use cases.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for profile updates. Nil
// pointer fields are left untouched.
type UpdateProfileInput struct {
	ProfileID      uuid.UUID
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	Name           *string
	AvatarURL      *string
	Level          *entity.ProfileLevel
	Badges         *[]string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	Profile *entity.Profile
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{profileRepo: profileRepo}
}

// Execute updates a profile. Members edit their own name and avatar;
// gamification fields (level, badges) are awarded by company admins.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	target, err := uc.profileRepo.FindByID(ctx, input.ProfileID)
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

	isSelf := target.ID == input.ActorID
	isManager := input.ActorRole == entity.RoleSuperAdmin ||
		(input.ActorRole == entity.RoleAdmin && target.CompanyID == input.ActorCompanyID)

	if !isSelf && !isManager {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnauthorized,
			"not authorized to update this profile",
			domainerror.ErrUnauthorized,
		)
	}

	if input.Name != nil {
		target.Name = *input.Name
	}
	if input.AvatarURL != nil {
		target.AvatarURL = *input.AvatarURL
	}

	if input.Level != nil || input.Badges != nil {
		if !isManager {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUnauthorized,
				"only admins can change level or badges",
				domainerror.ErrUnauthorized,
			)
		}
		if input.Level != nil {
			if !validLevel(*input.Level) {
				return nil, domainerror.NewAuthError(
					domainerror.ErrCodeMissingFields,
					"unknown profile level",
					nil,
				)
			}
			target.Level = *input.Level
		}
		if input.Badges != nil {
			target.Badges = *input.Badges
		}
	}

	target.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileOutput{Profile: target}, nil
}

func validLevel(level entity.ProfileLevel) bool {
	switch level {
	case entity.LevelBronze, entity.LevelPrata, entity.LevelOuro, entity.LevelDiamante:
		return true
	}
	return false
}
