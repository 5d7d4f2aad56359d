// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// Cache kinds for company-scoped monthly aggregates. Every Sale or Goal
// mutation for a (company, month) must invalidate all of them together.
const (
	CacheKindRanking              = "ranking"
	CacheKindTeamHealth           = "team_health"
	CacheKindConsolidatedProgress = "consolidated_progress"
)

// AggregateCache is an explicit, short-lived cache for derived monthly
// aggregates. Entries expire on their own after a few seconds (the
// documented staleness window); invalidation on mutation tightens that
// bound. A cache failure is never fatal: callers fall through to
// recomputation.
type AggregateCache interface {
	// Get unmarshals the cached value for (kind, company, month) into
	// dest and reports whether an entry was found.
	Get(ctx context.Context, kind string, companyID uuid.UUID, month string, dest interface{}) (bool, error)

	// Set stores the value for (kind, company, month) with the cache TTL.
	Set(ctx context.Context, kind string, companyID uuid.UUID, month string, value interface{}) error

	// InvalidateMonth drops every aggregate kind cached for the given
	// (company, month).
	InvalidateMonth(ctx context.Context, companyID uuid.UUID, month string) error
}
