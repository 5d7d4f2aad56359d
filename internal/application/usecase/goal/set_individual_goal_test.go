// Package goal contains goal management use cases.
package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
)

// In-memory fakes for the persistence and cache ports.

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func newFakeProfileRepo(profiles ...*entity.Profile) *fakeProfileRepo {
	m := make(map[uuid.UUID]*entity.Profile)
	for _, p := range profiles {
		m[p.ID] = p
	}
	return &fakeProfileRepo{profiles: m}
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *entity.Profile) error { return nil }
func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, domainerror.ErrUserNotFound
}
func (f *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return nil, domainerror.ErrUserNotFound
}
func (f *fakeProfileRepo) Update(ctx context.Context, p *entity.Profile) error { return nil }
func (f *fakeProfileRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (f *fakeProfileRepo) ListRankable(ctx context.Context, companyID uuid.UUID) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for _, p := range f.profiles {
		if p.CompanyID == companyID && p.Role != entity.RoleSuperAdmin {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeIndividualGoalRepo emulates the one-goal-per-(seller, month)
// uniqueness that the storage layer enforces with a constraint.
type fakeIndividualGoalRepo struct {
	goals []*entity.IndividualGoal
}

func (f *fakeIndividualGoalRepo) Upsert(ctx context.Context, goal *entity.IndividualGoal) (*entity.IndividualGoal, error) {
	for _, existing := range f.goals {
		if existing.SellerID == goal.SellerID && existing.ReferenceMonth.Equal(goal.ReferenceMonth) {
			existing.TargetAmount = goal.TargetAmount
			existing.UpdatedAt = time.Now().UTC()
			return existing, nil
		}
	}
	f.goals = append(f.goals, goal)
	return goal, nil
}
func (f *fakeIndividualGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.IndividualGoal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}
func (f *fakeIndividualGoalRepo) FindBySellerAndMonth(ctx context.Context, sellerID uuid.UUID, referenceMonth time.Time) (*entity.IndividualGoal, error) {
	for _, g := range f.goals {
		if g.SellerID == sellerID && g.ReferenceMonth.Equal(referenceMonth) {
			return g, nil
		}
	}
	return nil, nil
}
func (f *fakeIndividualGoalRepo) ListByCompanyAndMonth(ctx context.Context, companyID uuid.UUID, referenceMonth time.Time) ([]*entity.IndividualGoal, error) {
	var out []*entity.IndividualGoal
	for _, g := range f.goals {
		if g.CompanyID == companyID && g.ReferenceMonth.Equal(referenceMonth) {
			out = append(out, g)
		}
	}
	return out, nil
}
func (f *fakeIndividualGoalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, g := range f.goals {
		if g.ID == id {
			f.goals = append(f.goals[:i], f.goals[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

// recordingCache counts invalidations per (company, month) key.
type recordingCache struct {
	invalidated map[string]int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{invalidated: make(map[string]int)}
}

func (c *recordingCache) Get(ctx context.Context, kind string, companyID uuid.UUID, month string, dest interface{}) (bool, error) {
	return false, nil
}
func (c *recordingCache) Set(ctx context.Context, kind string, companyID uuid.UUID, month string, value interface{}) error {
	return nil
}
func (c *recordingCache) InvalidateMonth(ctx context.Context, companyID uuid.UUID, month string) error {
	c.invalidated[companyID.String()+":"+month]++
	return nil
}

func mustDecimal(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestSetIndividualGoal(t *testing.T) {
	companyID := uuid.New()
	admin := entity.NewProfile(companyID, "admin@acme.test", "Admin", "hash", entity.RoleAdmin)
	sellerProfile := entity.NewProfile(companyID, "seller@acme.test", "Seller", "hash", entity.RoleSeller)
	outsider := entity.NewProfile(uuid.New(), "other@rival.test", "Other", "hash", entity.RoleSeller)

	newUseCase := func() (*SetIndividualGoalUseCase, *fakeIndividualGoalRepo, *recordingCache) {
		repo := &fakeIndividualGoalRepo{}
		cache := newRecordingCache()
		uc := NewSetIndividualGoalUseCase(repo, newFakeProfileRepo(admin, sellerProfile, outsider), cache)
		return uc, repo, cache
	}

	adminInput := func(target string) SetIndividualGoalInput {
		return SetIndividualGoalInput{
			ActorID:        admin.ID,
			ActorRole:      entity.RoleAdmin,
			ActorCompanyID: companyID,
			SellerID:       sellerProfile.ID,
			ReferenceMonth: "2025-03",
			TargetAmount:   mustDecimal(target),
		}
	}

	t.Run("creates a goal and invalidates the month", func(t *testing.T) {
		uc, repo, cache := newUseCase()

		output, err := uc.Execute(context.Background(), adminInput("1000"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal == nil {
			t.Fatal("expected goal in output")
		}
		if len(repo.goals) != 1 {
			t.Fatalf("expected 1 stored goal, got %d", len(repo.goals))
		}
		if cache.invalidated[companyID.String()+":2025-03"] != 1 {
			t.Error("expected one cache invalidation for the goal month")
		}
	})

	t.Run("redefining overwrites in place, keeping one row", func(t *testing.T) {
		uc, repo, _ := newUseCase()

		first, err := uc.Execute(context.Background(), adminInput("1000"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), adminInput("2500"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.goals) != 1 {
			t.Fatalf("expected a single goal after redefinition, got %d", len(repo.goals))
		}
		if first.Goal.ID != second.Goal.ID {
			t.Error("expected the surviving goal to keep its identity")
		}
		if !repo.goals[0].TargetAmount.Equal(mustDecimal("2500")) {
			t.Errorf("expected target 2500, got %s", repo.goals[0].TargetAmount)
		}
	})

	t.Run("sellers cannot define goals", func(t *testing.T) {
		uc, _, _ := newUseCase()

		input := adminInput("1000")
		input.ActorID = sellerProfile.ID
		input.ActorRole = entity.RoleSeller

		_, err := uc.Execute(context.Background(), input)
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeNotAuthorizedToManageGoals {
			t.Fatalf("expected not authorized error, got %v", err)
		}
	})

	t.Run("rejects zero and negative targets", func(t *testing.T) {
		uc, _, _ := newUseCase()

		for _, target := range []string{"0", "-50"} {
			_, err := uc.Execute(context.Background(), adminInput(target))
			var goalErr *domainerror.GoalError
			if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidTargetAmount {
				t.Errorf("target %s: expected invalid target error, got %v", target, err)
			}
		}
	})

	t.Run("rejects malformed reference month", func(t *testing.T) {
		uc, _, _ := newUseCase()

		input := adminInput("1000")
		input.ReferenceMonth = "2025-3"

		_, err := uc.Execute(context.Background(), input)
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidReferenceMonth {
			t.Fatalf("expected invalid month error, got %v", err)
		}
	})

	t.Run("rejects sellers of other companies", func(t *testing.T) {
		uc, _, _ := newUseCase()

		input := adminInput("1000")
		input.SellerID = outsider.ID

		_, err := uc.Execute(context.Background(), input)
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeSellerNotInCompany {
			t.Fatalf("expected seller not in company error, got %v", err)
		}
	})
}
