// Package dashboard contains manager dashboard use cases.
package dashboard

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/domain/valueobject"
)

type fakeProfileRepo struct {
	profiles []*entity.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *entity.Profile) error { return nil }
func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
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

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *entity.Sale) error { return nil }
func (f *fakeSaleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return nil, domainerror.ErrSaleNotFound
}
func (f *fakeSaleRepo) Update(ctx context.Context, s *entity.Sale) error { return nil }
func (f *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }
func (f *fakeSaleRepo) ListByCompany(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.CompanyID == companyID && s.InWindow(start, end) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeSaleRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.SellerID == sellerID && s.InWindow(start, end) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeIndividualGoalRepo struct {
	goals []*entity.IndividualGoal
}

func (f *fakeIndividualGoalRepo) Upsert(ctx context.Context, g *entity.IndividualGoal) (*entity.IndividualGoal, error) {
	return g, nil
}
func (f *fakeIndividualGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.IndividualGoal, error) {
	return nil, domainerror.ErrGoalNotFound
}
func (f *fakeIndividualGoalRepo) FindBySellerAndMonth(ctx context.Context, sellerID uuid.UUID, referenceMonth time.Time) (*entity.IndividualGoal, error) {
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
func (f *fakeIndividualGoalRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeConsolidatedGoalRepo struct {
	goal *entity.ConsolidatedGoal
}

func (f *fakeConsolidatedGoalRepo) Upsert(ctx context.Context, g *entity.ConsolidatedGoal) (*entity.ConsolidatedGoal, error) {
	return g, nil
}
func (f *fakeConsolidatedGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ConsolidatedGoal, error) {
	return nil, domainerror.ErrGoalNotFound
}
func (f *fakeConsolidatedGoalRepo) FindByCompanyAndMonth(ctx context.Context, companyID uuid.UUID, referenceMonth time.Time) (*entity.ConsolidatedGoal, error) {
	if f.goal != nil && f.goal.CompanyID == companyID && f.goal.ReferenceMonth.Equal(referenceMonth) {
		return f.goal, nil
	}
	return nil, nil
}
func (f *fakeConsolidatedGoalRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type noopCache struct{}

func (noopCache) Get(ctx context.Context, kind string, companyID uuid.UUID, month string, dest interface{}) (bool, error) {
	return false, nil
}
func (noopCache) Set(ctx context.Context, kind string, companyID uuid.UUID, month string, value interface{}) error {
	return nil
}
func (noopCache) InvalidateMonth(ctx context.Context, companyID uuid.UUID, month string) error {
	return nil
}

func mustDecimal(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestGetTeamHealth(t *testing.T) {
	companyID := uuid.New()
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	onTarget := entity.NewProfile(companyID, "on@acme.test", "On Target", "hash", entity.RoleSeller)
	belowTarget := entity.NewProfile(companyID, "below@acme.test", "Below", "hash", entity.RoleSeller)
	noGoal := entity.NewProfile(companyID, "nogoal@acme.test", "No Goal", "hash", entity.RoleSeller)

	approved := func(seller uuid.UUID, amount string) *entity.Sale {
		s := entity.NewSale(seller, companyID, mustDecimal(amount), "", march.AddDate(0, 0, 9))
		s.Status = entity.SaleStatusApproved
		return s
	}

	uc := NewGetTeamHealthUseCase(
		&fakeProfileRepo{profiles: []*entity.Profile{onTarget, belowTarget, noGoal}},
		&fakeSaleRepo{sales: []*entity.Sale{
			approved(onTarget.ID, "1200"),
			approved(belowTarget.ID, "400"),
			approved(noGoal.ID, "100"),
		}},
		&fakeIndividualGoalRepo{goals: []*entity.IndividualGoal{
			entity.NewIndividualGoal(onTarget.ID, companyID, march, mustDecimal("1000")),
			entity.NewIndividualGoal(belowTarget.ID, companyID, march, mustDecimal("1000")),
		}},
		&fakeConsolidatedGoalRepo{
			goal: entity.NewConsolidatedGoal(companyID, march, mustDecimal("2000"), "", ""),
		},
		noopCache{},
	)

	output, err := uc.Execute(context.Background(), GetTeamHealthInput{
		ActorID:        uuid.New(),
		ActorRole:      entity.RoleAdmin,
		ActorCompanyID: companyID,
		Month:          "2025-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("team realized sums every approved sale", func(t *testing.T) {
		if !output.TeamRealized.Equal(mustDecimal("1700")) {
			t.Errorf("expected 1700, got %s", output.TeamRealized)
		}
	})

	t.Run("counts sellers, goals and on-target sellers", func(t *testing.T) {
		if output.SellerCount != 3 {
			t.Errorf("expected 3 sellers, got %d", output.SellerCount)
		}
		if output.SellersWithGoal != 2 {
			t.Errorf("expected 2 sellers with goals, got %d", output.SellersWithGoal)
		}
		if output.SellersOnTarget != 1 {
			t.Errorf("expected 1 seller on target, got %d", output.SellersOnTarget)
		}
	})

	t.Run("average percent spans only sellers with goals", func(t *testing.T) {
		// (120 + 40) / 2
		if output.AveragePercent != 80 {
			t.Errorf("expected average 80, got %f", output.AveragePercent)
		}
	})

	t.Run("total target sums individual goals", func(t *testing.T) {
		if !output.TotalTarget.Equal(mustDecimal("2000")) {
			t.Errorf("expected total target 2000, got %s", output.TotalTarget)
		}
		// 1700 / 2000
		if output.TeamProgressPercent != 85 {
			t.Errorf("expected team progress 85, got %f", output.TeamProgressPercent)
		}
	})

	t.Run("consolidated rollup carries derived progress", func(t *testing.T) {
		if output.Consolidated == nil {
			t.Fatal("expected consolidated rollup")
		}
		if output.Consolidated.Percent != 85 {
			t.Errorf("expected 85%%, got %f", output.Consolidated.Percent)
		}
		if !output.Consolidated.Shortfall.Equal(mustDecimal("300")) {
			t.Errorf("expected shortfall 300, got %s", output.Consolidated.Shortfall)
		}
		if output.Consolidated.Status != valueobject.TierBelowTarget {
			t.Errorf("expected below_target, got %s", output.Consolidated.Status)
		}
	})
}

func TestGetTeamHealth_TeamProgressIsNotAveragePercent(t *testing.T) {
	companyID := uuid.New()
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	overachiever := entity.NewProfile(companyID, "ana@acme.test", "Ana", "hash", entity.RoleSeller)
	laggard := entity.NewProfile(companyID, "bruno@acme.test", "Bruno", "hash", entity.RoleSeller)

	approved := func(seller uuid.UUID, amount string) *entity.Sale {
		s := entity.NewSale(seller, companyID, mustDecimal(amount), "", march.AddDate(0, 0, 9))
		s.Status = entity.SaleStatusApproved
		return s
	}

	uc := NewGetTeamHealthUseCase(
		&fakeProfileRepo{profiles: []*entity.Profile{overachiever, laggard}},
		&fakeSaleRepo{sales: []*entity.Sale{
			approved(overachiever.ID, "1200"),
			approved(laggard.ID, "1000"),
		}},
		&fakeIndividualGoalRepo{goals: []*entity.IndividualGoal{
			entity.NewIndividualGoal(overachiever.ID, companyID, march, mustDecimal("1000")),
			entity.NewIndividualGoal(laggard.ID, companyID, march, mustDecimal("2000")),
		}},
		&fakeConsolidatedGoalRepo{
			goal: entity.NewConsolidatedGoal(companyID, march, mustDecimal("3000"), "", ""),
		},
		noopCache{},
	)

	output, err := uc.Execute(context.Background(), GetTeamHealthInput{
		ActorID:        uuid.New(),
		ActorRole:      entity.RoleAdmin,
		ActorCompanyID: companyID,
		Month:          "2025-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalTarget.Equal(mustDecimal("3000")) {
		t.Errorf("expected total target 3000, got %s", output.TotalTarget)
	}
	if !output.TeamRealized.Equal(mustDecimal("2200")) {
		t.Errorf("expected team realized 2200, got %s", output.TeamRealized)
	}
	// 2200 / 3000, a repeating decimal
	if math.Abs(output.TeamProgressPercent-73.3333) > 0.001 {
		t.Errorf("expected team progress near 73.33, got %f", output.TeamProgressPercent)
	}
	// (120 + 50) / 2, which tracks a different question than team progress
	if output.AveragePercent != 85 {
		t.Errorf("expected average 85, got %f", output.AveragePercent)
	}
}

func TestGetTeamHealth_NoConsolidatedGoal(t *testing.T) {
	companyID := uuid.New()

	uc := NewGetTeamHealthUseCase(
		&fakeProfileRepo{},
		&fakeSaleRepo{},
		&fakeIndividualGoalRepo{},
		&fakeConsolidatedGoalRepo{},
		noopCache{},
	)

	output, err := uc.Execute(context.Background(), GetTeamHealthInput{
		ActorID:        uuid.New(),
		ActorRole:      entity.RoleAdmin,
		ActorCompanyID: companyID,
		Month:          "2025-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Consolidated != nil {
		t.Error("expected nil consolidated rollup when no goal is defined")
	}
	if !output.TotalTarget.IsZero() {
		t.Errorf("expected zero total target with no goals, got %s", output.TotalTarget)
	}
	if output.TeamProgressPercent != 0 {
		t.Errorf("expected zero team progress with no goals, got %f", output.TeamProgressPercent)
	}
	if output.AveragePercent != 0 {
		t.Errorf("expected zero average with no goals, got %f", output.AveragePercent)
	}
}
