// Package goal contains monthly goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/domain/valueobject"
)

// ProgressOutput represents derived goal progress in use case outputs.
type ProgressOutput struct {
	RealizedAmount decimal.Decimal
	Percent        float64
	VisualPercent  float64
	Shortfall      decimal.Decimal
	Status         valueobject.StatusTier
}

// toProgressOutput maps a derived GoalProgress into the output form.
func toProgressOutput(p valueobject.GoalProgress) *ProgressOutput {
	return &ProgressOutput{
		RealizedAmount: p.RealizedAmount,
		Percent:        p.Percent,
		VisualPercent:  p.VisualPercent,
		Shortfall:      p.Shortfall,
		Status:         p.Status,
	}
}

// IndividualGoalOutput represents an individual goal in use case outputs.
type IndividualGoalOutput struct {
	ID             uuid.UUID
	SellerID       uuid.UUID
	SellerName     string
	CompanyID      uuid.UUID
	ReferenceMonth string
	TargetAmount   decimal.Decimal
	Progress       *ProgressOutput
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// toIndividualGoalOutput maps an individual goal entity into the output
// representation. progress may be nil when the caller did not derive it.
func toIndividualGoalOutput(goal *entity.IndividualGoal, sellerName string, progress *ProgressOutput) *IndividualGoalOutput {
	return &IndividualGoalOutput{
		ID:             goal.ID,
		SellerID:       goal.SellerID,
		SellerName:     sellerName,
		CompanyID:      goal.CompanyID,
		ReferenceMonth: monthString(goal.ReferenceMonth),
		TargetAmount:   goal.TargetAmount,
		Progress:       progress,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}

// ListIndividualGoalsInput represents the input for listing a company's
// individual goals.
type ListIndividualGoalsInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.ProfileRole
	ActorCompanyID uuid.UUID
	CompanyID      uuid.UUID // superadmin override
	ReferenceMonth string    // "YYYY-MM"; empty means the current month
}

// ListIndividualGoalsOutput represents the output of individual goal listing.
type ListIndividualGoalsOutput struct {
	Goals []*IndividualGoalOutput
	Month string
}

// ListIndividualGoalsUseCase handles individual goal listing logic.
type ListIndividualGoalsUseCase struct {
	individualGoalRepo adapter.IndividualGoalRepository
	profileRepo        adapter.ProfileRepository
	saleRepo           adapter.SaleRepository
}

// NewListIndividualGoalsUseCase creates a new ListIndividualGoalsUseCase instance.
func NewListIndividualGoalsUseCase(
	individualGoalRepo adapter.IndividualGoalRepository,
	profileRepo adapter.ProfileRepository,
	saleRepo adapter.SaleRepository,
) *ListIndividualGoalsUseCase {
	return &ListIndividualGoalsUseCase{
		individualGoalRepo: individualGoalRepo,
		profileRepo:        profileRepo,
		saleRepo:           saleRepo,
	}
}

// Execute lists all individual goals of a company for one month, with
// each seller's progress derived from the raw ledger.
func (uc *ListIndividualGoalsUseCase) Execute(ctx context.Context, input ListIndividualGoalsInput) (*ListIndividualGoalsOutput, error) {
	companyID, err := resolveCompanyScope(input.ActorRole, input.ActorCompanyID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	monthRef, err := resolveMonth(input.ReferenceMonth)
	if err != nil {
		return nil, err
	}
	start, end := monthRef.Window()

	goals, err := uc.individualGoalRepo.ListByCompanyAndMonth(ctx, companyID, monthRef.FirstDay())
	if err != nil {
		return nil, fmt.Errorf("failed to list individual goals: %w", err)
	}

	sales, err := uc.saleRepo.ListByCompany(ctx, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	realizedBySeller := entity.RealizedTotalsBySeller(sales, start, end)

	names := make(map[uuid.UUID]string)
	if profiles, err := uc.profileRepo.ListRankable(ctx, companyID); err == nil {
		for _, p := range profiles {
			names[p.ID] = p.Name
		}
	}

	output := &ListIndividualGoalsOutput{
		Goals: make([]*IndividualGoalOutput, 0, len(goals)),
		Month: monthRef.String(),
	}
	for _, g := range goals {
		progress := valueobject.NewGoalProgress(
			g.TargetAmount,
			realizedBySeller[g.SellerID],
			valueobject.DefaultIndividualSuperTargetPercent,
		)
		output.Goals = append(output.Goals, toIndividualGoalOutput(g, names[g.SellerID], toProgressOutput(progress)))
	}

	return output, nil
}

// resolveCompanyScope picks the company a goal read operates on.
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
		return valueobject.MonthRef{}, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidReferenceMonth,
			"reference month must match YYYY-MM",
			domainerror.ErrInvalidReferenceMonth,
		)
	}
	return ref, nil
}
