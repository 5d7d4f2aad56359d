// Package profile contains team member management use cases.
package profile

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
)

// CreateSellerInput represents the input for adding a team member.
type CreateSellerInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	Email          string
	Name           string
	Password       string
	Role           entity.ProfileRole // seller or admin
}

// CreateSellerOutput represents the output of adding a team member.
type CreateSellerOutput struct {
	Profile *entity.Profile
}

// CreateSellerUseCase handles team member creation logic.
type CreateSellerUseCase struct {
	profileRepo     adapter.ProfileRepository
	passwordService adapter.PasswordService
}

// NewCreateSellerUseCase creates a new CreateSellerUseCase instance.
func NewCreateSellerUseCase(
	profileRepo adapter.ProfileRepository,
	passwordService adapter.PasswordService,
) *CreateSellerUseCase {
	return &CreateSellerUseCase{
		profileRepo:     profileRepo,
		passwordService: passwordService,
	}
}

// Execute adds a seller or admin profile to the actor's company. Only
// admins add team members, and never superadmin accounts.
func (uc *CreateSellerUseCase) Execute(ctx context.Context, input CreateSellerInput) (*CreateSellerOutput, error) {
	if input.ActorRole != entity.RoleAdmin && input.ActorRole != entity.RoleSuperAdmin {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnauthorized,
			"only admins can add team members",
			domainerror.ErrUnauthorized,
		)
	}

	if input.Role != entity.RoleSeller && input.Role != entity.RoleAdmin {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRole,
			"role must be 'seller' or 'admin'",
			domainerror.ErrInvalidRole,
		)
	}

	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.profileRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := entity.NewProfile(input.ActorCompanyID, input.Email, input.Name, passwordHash, input.Role)
	if err := uc.profileRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &CreateSellerOutput{Profile: member}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
