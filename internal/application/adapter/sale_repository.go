// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/domain/entity"
)

// SaleRepository defines the interface for sale ledger persistence operations.
//
// List methods return raw rows; realized totals are always derived from
// them in memory so there is exactly one aggregation path.
type SaleRepository interface {
	// Create creates a new sale in the database.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// Update updates an existing sale in the database.
	Update(ctx context.Context, sale *entity.Sale) error

	// Delete removes a sale from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByCompany retrieves all sales of a company whose date falls
	// within [start, end] inclusive, ordered by sale date descending.
	ListByCompany(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]*entity.Sale, error)

	// ListBySeller retrieves all sales of a single seller within
	// [start, end] inclusive, ordered by sale date descending.
	ListBySeller(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]*entity.Sale, error)
}
