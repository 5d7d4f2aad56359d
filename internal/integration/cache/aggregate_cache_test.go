// Package cache implements the aggregate cache on Redis.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vendagame/backend/internal/application/adapter"
)

type rankingSnapshot struct {
	Month   string   `json:"month"`
	Sellers []string `json:"sellers"`
}

func newTestCache(t *testing.T, ttl time.Duration) (adapter.AggregateCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewAggregateCache(client, ttl), mr
}

func TestAggregateCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t, 5*time.Second)
	companyID := uuid.New()
	ctx := context.Background()

	value := rankingSnapshot{Month: "2025-03", Sellers: []string{"alice", "bruno"}}
	if err := c.Set(ctx, adapter.CacheKindRanking, companyID, "2025-03", value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got rankingSnapshot
	hit, err := c.Get(ctx, adapter.CacheKindRanking, companyID, "2025-03", &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got.Month != "2025-03" || len(got.Sellers) != 2 {
		t.Errorf("unexpected cached value: %+v", got)
	}
}

func TestAggregateCache_MissIsNotAnError(t *testing.T) {
	c, _ := newTestCache(t, 5*time.Second)

	var got rankingSnapshot
	hit, err := c.Get(context.Background(), adapter.CacheKindRanking, uuid.New(), "2025-03", &got)
	if err != nil {
		t.Fatalf("expected silent miss, got error: %v", err)
	}
	if hit {
		t.Fatal("expected cache miss")
	}
}

func TestAggregateCache_KeysAreScopedByCompanyAndMonth(t *testing.T) {
	c, _ := newTestCache(t, 5*time.Second)
	ctx := context.Background()
	companyA := uuid.New()
	companyB := uuid.New()

	if err := c.Set(ctx, adapter.CacheKindRanking, companyA, "2025-03", rankingSnapshot{Month: "2025-03"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got rankingSnapshot
	if hit, _ := c.Get(ctx, adapter.CacheKindRanking, companyB, "2025-03", &got); hit {
		t.Error("expected no hit for another company")
	}
	if hit, _ := c.Get(ctx, adapter.CacheKindRanking, companyA, "2025-04", &got); hit {
		t.Error("expected no hit for another month")
	}
}

func TestAggregateCache_InvalidateMonthDropsAllKinds(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()
	companyID := uuid.New()

	kinds := []string{
		adapter.CacheKindRanking,
		adapter.CacheKindTeamHealth,
		adapter.CacheKindConsolidatedProgress,
	}
	for _, kind := range kinds {
		if err := c.Set(ctx, kind, companyID, "2025-03", rankingSnapshot{Month: "2025-03"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// An adjacent month survives the invalidation.
	if err := c.Set(ctx, adapter.CacheKindRanking, companyID, "2025-04", rankingSnapshot{Month: "2025-04"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.InvalidateMonth(ctx, companyID, "2025-03"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got rankingSnapshot
	for _, kind := range kinds {
		if hit, _ := c.Get(ctx, kind, companyID, "2025-03", &got); hit {
			t.Errorf("expected %s to be invalidated", kind)
		}
	}
	if hit, _ := c.Get(ctx, adapter.CacheKindRanking, companyID, "2025-04", &got); !hit {
		t.Error("expected the adjacent month to survive")
	}
}

func TestAggregateCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t, 5*time.Second)
	ctx := context.Background()
	companyID := uuid.New()

	if err := c.Set(ctx, adapter.CacheKindRanking, companyID, "2025-03", rankingSnapshot{Month: "2025-03"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(6 * time.Second)

	var got rankingSnapshot
	if hit, _ := c.Get(ctx, adapter.CacheKindRanking, companyID, "2025-03", &got); hit {
		t.Error("expected entry to expire after the TTL")
	}
}
