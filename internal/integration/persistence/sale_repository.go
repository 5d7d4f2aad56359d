// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/integration/persistence/model"
)

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create creates a new sale in the database.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).Create(saleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a sale by its ID.
func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// Update updates an existing sale in the database.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).Save(saleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a sale.
func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SaleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListByCompany retrieves all sales of a company whose date falls within
// [start, end] inclusive, ordered by sale date descending.
func (r *saleRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND sale_date >= ? AND sale_date <= ?", companyID, start, end).
		Order("sale_date DESC, created_at DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSaleEntities(saleModels), nil
}

// ListBySeller retrieves all sales of a single seller within
// [start, end] inclusive, ordered by sale date descending.
func (r *saleRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Where("seller_id = ? AND sale_date >= ? AND sale_date <= ?", sellerID, start, end).
		Order("sale_date DESC, created_at DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSaleEntities(saleModels), nil
}

func toSaleEntities(saleModels []model.SaleModel) []*entity.Sale {
	sales := make([]*entity.Sale, 0, len(saleModels))
	for i := range saleModels {
		sales = append(sales, saleModels[i].ToEntity())
	}
	return sales
}
