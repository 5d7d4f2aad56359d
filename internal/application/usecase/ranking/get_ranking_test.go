// Package ranking contains leaderboard use cases.
package ranking

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
	profiles []*entity.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *entity.Profile) error { return nil }
func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
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

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *entity.Sale) error { return nil }
func (f *fakeSaleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domainerror.ErrSaleNotFound
}
func (f *fakeSaleRepo) Update(ctx context.Context, s *entity.Sale) error  { return nil }
func (f *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error    { return nil }
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
	return nil, nil
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
func (f *fakeIndividualGoalRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeConsolidatedGoalRepo struct {
	goal *entity.ConsolidatedGoal
}

func (f *fakeConsolidatedGoalRepo) Upsert(ctx context.Context, g *entity.ConsolidatedGoal) (*entity.ConsolidatedGoal, error) {
	return g, nil
}
func (f *fakeConsolidatedGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ConsolidatedGoal, error) {
	if f.goal != nil && f.goal.ID == id {
		return f.goal, nil
	}
	return nil, domainerror.ErrGoalNotFound
}
func (f *fakeConsolidatedGoalRepo) FindByCompanyAndMonth(ctx context.Context, companyID uuid.UUID, referenceMonth time.Time) (*entity.ConsolidatedGoal, error) {
	if f.goal != nil && f.goal.CompanyID == companyID && f.goal.ReferenceMonth.Equal(referenceMonth) {
		return f.goal, nil
	}
	return nil, nil
}
func (f *fakeConsolidatedGoalRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// noopCache never hits so every read recomputes from the ledger.
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

// brokenCache errors on every operation so reads must recompute.
type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, kind string, companyID uuid.UUID, month string, dest interface{}) (bool, error) {
	return false, errors.New("redis: connection refused")
}
func (brokenCache) Set(ctx context.Context, kind string, companyID uuid.UUID, month string, value interface{}) error {
	return errors.New("redis: connection refused")
}
func (brokenCache) InvalidateMonth(ctx context.Context, companyID uuid.UUID, month string) error {
	return errors.New("redis: connection refused")
}

// Test fixtures.

func seller(companyID uuid.UUID, name string) *entity.Profile {
	return entity.NewProfile(companyID, name+"@acme.test", name, "hash", entity.RoleSeller)
}

func approvedSale(sellerID, companyID uuid.UUID, amount string, date time.Time) *entity.Sale {
	s := entity.NewSale(sellerID, companyID, mustDecimal(amount), "", date)
	s.Status = entity.SaleStatusApproved
	return s
}

func mustDecimal(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestGetRanking_OrderingAndRanks(t *testing.T) {
	companyID := uuid.New()
	alice := seller(companyID, "alice")
	bruno := seller(companyID, "bruno")
	carla := seller(companyID, "carla")
	diego := seller(companyID, "diego")

	march10 := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		approvedSale(alice.ID, companyID, "500", march10),
		approvedSale(bruno.ID, companyID, "800", march10),
		approvedSale(carla.ID, companyID, "500", march10),
	}}

	uc := NewGetRankingUseCase(
		&fakeProfileRepo{profiles: []*entity.Profile{alice, bruno, carla, diego}},
		saleRepo,
		&fakeIndividualGoalRepo{},
		&fakeConsolidatedGoalRepo{},
		noopCache{},
	)

	output, err := uc.Execute(context.Background(), GetRankingInput{
		ActorID:        alice.ID,
		ActorRole:      entity.RoleSeller,
		ActorCompanyID: companyID,
		Month:          "2025-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Entries) != 4 {
		t.Fatalf("expected 4 entries including the zero seller, got %d", len(output.Entries))
	}

	// Descending by realized amount; the 500 tie keeps account-creation
	// order (alice before carla); the zero seller is listed last.
	wantOrder := []uuid.UUID{bruno.ID, alice.ID, carla.ID, diego.ID}
	for i, want := range wantOrder {
		if output.Entries[i].SellerID != want {
			t.Errorf("position %d: unexpected seller", i)
		}
		if output.Entries[i].RankPosition != i+1 {
			t.Errorf("position %d: expected rank %d, got %d", i, i+1, output.Entries[i].RankPosition)
		}
	}

	if !output.Entries[3].RealizedAmount.IsZero() {
		t.Errorf("expected zero realized for seller with no sales, got %s", output.Entries[3].RealizedAmount)
	}
}

func TestGetRanking_CacheOutageFallsBackToLedger(t *testing.T) {
	companyID := uuid.New()
	alice := seller(companyID, "alice")
	bruno := seller(companyID, "bruno")

	march10 := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	uc := NewGetRankingUseCase(
		&fakeProfileRepo{profiles: []*entity.Profile{alice, bruno}},
		&fakeSaleRepo{sales: []*entity.Sale{
			approvedSale(alice.ID, companyID, "500", march10),
			approvedSale(bruno.ID, companyID, "800", march10),
		}},
		&fakeIndividualGoalRepo{},
		&fakeConsolidatedGoalRepo{},
		brokenCache{},
	)

	output, err := uc.Execute(context.Background(), GetRankingInput{
		ActorID:        alice.ID,
		ActorRole:      entity.RoleSeller,
		ActorCompanyID: companyID,
		Month:          "2025-03",
	})
	if err != nil {
		t.Fatalf("expected cache failures to be non-fatal, got: %v", err)
	}

	if len(output.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(output.Entries))
	}
	if output.Entries[0].SellerID != bruno.ID {
		t.Error("expected bruno first")
	}
	if !output.Entries[0].RealizedAmount.Equal(mustDecimal("800")) {
		t.Errorf("expected 800, got %s", output.Entries[0].RealizedAmount)
	}
}

func TestGetRanking_TieStabilityAcrossReruns(t *testing.T) {
	companyID := uuid.New()
	first := seller(companyID, "first")
	second := seller(companyID, "second")

	march := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		approvedSale(first.ID, companyID, "300", march),
		approvedSale(second.ID, companyID, "300", march),
	}}

	uc := NewGetRankingUseCase(
		&fakeProfileRepo{profiles: []*entity.Profile{first, second}},
		saleRepo,
		&fakeIndividualGoalRepo{},
		&fakeConsolidatedGoalRepo{},
		noopCache{},
	)

	input := GetRankingInput{
		ActorID:        first.ID,
		ActorRole:      entity.RoleSeller,
		ActorCompanyID: companyID,
		Month:          "2025-03",
	}

	for run := 0; run < 5; run++ {
		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", run, err)
		}
		if output.Entries[0].SellerID != first.ID || output.Entries[1].SellerID != second.ID {
			t.Fatalf("run %d: tie order reshuffled", run)
		}
	}
}

func TestGetRanking_GoalPercents(t *testing.T) {
	companyID := uuid.New()
	withGoal := seller(companyID, "with-goal")
	withoutGoal := seller(companyID, "without-goal")

	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		approvedSale(withGoal.ID, companyID, "750", march),
		approvedSale(withoutGoal.ID, companyID, "900", march),
	}}
	goalRepo := &fakeIndividualGoalRepo{goals: []*entity.IndividualGoal{
		entity.NewIndividualGoal(withGoal.ID, companyID, march, mustDecimal("1000")),
	}}
	consolidatedRepo := &fakeConsolidatedGoalRepo{
		goal: entity.NewConsolidatedGoal(companyID, march, mustDecimal("3000"), "", ""),
	}

	uc := NewGetRankingUseCase(
		&fakeProfileRepo{profiles: []*entity.Profile{withGoal, withoutGoal}},
		saleRepo,
		goalRepo,
		consolidatedRepo,
		noopCache{},
	)

	output, err := uc.Execute(context.Background(), GetRankingInput{
		ActorID:        withGoal.ID,
		ActorRole:      entity.RoleSeller,
		ActorCompanyID: companyID,
		Month:          "2025-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := make(map[uuid.UUID]*entity.RankingEntry)
	for _, e := range output.Entries {
		byID[e.SellerID] = e
	}

	t.Run("seller with a goal carries amount and percent", func(t *testing.T) {
		e := byID[withGoal.ID]
		if e.IndividualGoalAmount == nil || !e.IndividualGoalAmount.Equal(mustDecimal("1000")) {
			t.Fatal("expected individual goal amount 1000")
		}
		if e.PercentOfIndividualGoal == nil || *e.PercentOfIndividualGoal != 75 {
			t.Fatal("expected 75% of individual goal")
		}
	})

	t.Run("seller without a goal carries nil, not zero", func(t *testing.T) {
		e := byID[withoutGoal.ID]
		if e.IndividualGoalAmount != nil || e.PercentOfIndividualGoal != nil {
			t.Fatal("expected nil goal fields for seller without a goal")
		}
	})

	t.Run("consolidated percent is present for everyone", func(t *testing.T) {
		e := byID[withGoal.ID]
		if e.PercentOfConsolidatedGoal == nil || *e.PercentOfConsolidatedGoal != 25 {
			t.Fatal("expected 25% of consolidated goal")
		}
	})
}

func TestGetRanking_CompanyScope(t *testing.T) {
	companyID := uuid.New()

	uc := NewGetRankingUseCase(
		&fakeProfileRepo{},
		&fakeSaleRepo{},
		&fakeIndividualGoalRepo{},
		&fakeConsolidatedGoalRepo{},
		noopCache{},
	)

	t.Run("superadmin must name a company", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetRankingInput{
			ActorID:   uuid.New(),
			ActorRole: entity.RoleSuperAdmin,
			Month:     "2025-03",
		})
		if err == nil {
			t.Fatal("expected missing company scope error")
		}
	})

	t.Run("seller cannot target another company", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetRankingInput{
			ActorID:        uuid.New(),
			ActorRole:      entity.RoleSeller,
			ActorCompanyID: companyID,
			CompanyID:      uuid.New(),
			Month:          "2025-03",
		})
		if err == nil {
			t.Fatal("expected not authorized error")
		}
	})

	t.Run("malformed month is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetRankingInput{
			ActorID:        uuid.New(),
			ActorRole:      entity.RoleSeller,
			ActorCompanyID: companyID,
			Month:          "03-2025",
		})
		if err == nil {
			t.Fatal("expected invalid month error")
		}
	})
}

func TestGetPodium_TruncatesToThree(t *testing.T) {
	companyID := uuid.New()
	profiles := make([]*entity.Profile, 0, 5)
	sales := make([]*entity.Sale, 0, 5)
	march := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	amounts := []string{"100", "200", "300", "400", "500"}
	for i, amount := range amounts {
		p := seller(companyID, "seller"+amounts[i])
		profiles = append(profiles, p)
		sales = append(sales, approvedSale(p.ID, companyID, amount, march))
	}

	rankingUC := NewGetRankingUseCase(
		&fakeProfileRepo{profiles: profiles},
		&fakeSaleRepo{sales: sales},
		&fakeIndividualGoalRepo{},
		&fakeConsolidatedGoalRepo{},
		noopCache{},
	)
	uc := NewGetPodiumUseCase(rankingUC)

	output, err := uc.Execute(context.Background(), GetPodiumInput{
		ActorID:        profiles[0].ID,
		ActorRole:      entity.RoleSeller,
		ActorCompanyID: companyID,
		Month:          "2025-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Podium) != 3 {
		t.Fatalf("expected podium of 3, got %d", len(output.Podium))
	}
	if !output.Podium[0].RealizedAmount.Equal(mustDecimal("500")) {
		t.Errorf("expected 500 at the top, got %s", output.Podium[0].RealizedAmount)
	}
	if output.Podium[2].RankPosition != 3 {
		t.Errorf("expected rank 3 in last podium slot, got %d", output.Podium[2].RankPosition)
	}
}
