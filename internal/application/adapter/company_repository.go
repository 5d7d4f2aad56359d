// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/domain/entity"
)

// CompanyRepository defines the interface for company persistence operations.
type CompanyRepository interface {
	// Create creates a new company in the database.
	Create(ctx context.Context, company *entity.Company) error

	// FindByID retrieves a company by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// ExistsBySlug checks if a company with the given slug exists.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
