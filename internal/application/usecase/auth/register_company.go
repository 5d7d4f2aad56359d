// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
)

// RegisterCompanyInput represents the input for registering a new
// company together with its first admin profile.
type RegisterCompanyInput struct {
	CompanyName string
	Email       string
	Name        string
	Password    string
}

// RegisterCompanyOutput represents the output of company registration.
type RegisterCompanyOutput struct {
	AccessToken  string
	RefreshToken string
	Company      *entity.Company
	Profile      *entity.Profile
}

// RegisterCompanyUseCase handles tenant signup logic.
type RegisterCompanyUseCase struct {
	companyRepo     adapter.CompanyRepository
	profileRepo     adapter.ProfileRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterCompanyUseCase creates a new RegisterCompanyUseCase instance.
func NewRegisterCompanyUseCase(
	companyRepo adapter.CompanyRepository,
	profileRepo adapter.ProfileRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterCompanyUseCase {
	return &RegisterCompanyUseCase{
		companyRepo:     companyRepo,
		profileRepo:     profileRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the company registration.
func (uc *RegisterCompanyUseCase) Execute(ctx context.Context, input RegisterCompanyInput) (*RegisterCompanyOutput, error) {
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingCompanyName,
			"company name is required",
			domainerror.ErrMissingCompanyName,
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

	company := entity.NewCompany(input.CompanyName, uc.uniqueSlug(ctx, input.CompanyName))
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	// The first profile of a company is always its admin.
	profile := entity.NewProfile(company.ID, input.Email, input.Name, passwordHash, entity.RoleAdmin)
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, profile, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterCompanyOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Company:      company,
		Profile:      profile,
	}, nil
}

// uniqueSlug derives a URL-safe slug from the company name, suffixing a
// counter when the plain slug is taken.
func (uc *RegisterCompanyUseCase) uniqueSlug(ctx context.Context, name string) string {
	base := slugify(name)
	slug := base
	for i := 2; ; i++ {
		taken, err := uc.companyRepo.ExistsBySlug(ctx, slug)
		if err != nil || !taken {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases the name and collapses runs of non-alphanumerics
// into single dashes.
func slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
