// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/integration/persistence/model"
)

// companyRepository implements the adapter.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository instance.
func NewCompanyRepository(db *gorm.DB) adapter.CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

// Create creates a new company in the database.
func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyModel := model.CompanyFromEntity(company)
	result := r.db.WithContext(ctx).Create(companyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a company by its ID.
func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyModel model.CompanyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&companyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCompanyNotFound
		}
		return nil, result.Error
	}
	return companyModel.ToEntity(), nil
}

// ExistsBySlug checks if a company with the given slug exists.
func (r *companyRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CompanyModel{}).Where("slug = ?", slug).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
