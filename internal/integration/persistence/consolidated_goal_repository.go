// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vendagame/backend/internal/application/adapter"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/integration/persistence/model"
)

// consolidatedGoalRepository implements the adapter.ConsolidatedGoalRepository interface.
type consolidatedGoalRepository struct {
	db *gorm.DB
}

// NewConsolidatedGoalRepository creates a new consolidated goal repository instance.
func NewConsolidatedGoalRepository(db *gorm.DB) adapter.ConsolidatedGoalRepository {
	return &consolidatedGoalRepository{
		db: db,
	}
}

// Upsert inserts the goal or updates the existing row for the same
// (company, month) in one statement backed by the unique index.
func (r *consolidatedGoalRepository) Upsert(ctx context.Context, goal *entity.ConsolidatedGoal) (*entity.ConsolidatedGoal, error) {
	goalModel := model.ConsolidatedGoalFromEntity(goal)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}, {Name: "reference_month"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"target_amount":  goalModel.TargetAmount,
				"description":    goalModel.Description,
				"target_product": goalModel.TargetProduct,
				"updated_at":     time.Now().UTC(),
			}),
		}).
		Create(goalModel)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.FindByCompanyAndMonth(ctx, goal.CompanyID, goal.ReferenceMonth)
}

// FindByID retrieves a consolidated goal by its ID.
func (r *consolidatedGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ConsolidatedGoal, error) {
	var goalModel model.ConsolidatedGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByCompanyAndMonth retrieves the goal for (company, month), or nil
// when none is defined.
func (r *consolidatedGoalRepository) FindByCompanyAndMonth(ctx context.Context, companyID uuid.UUID, referenceMonth time.Time) (*entity.ConsolidatedGoal, error) {
	var goalModel model.ConsolidatedGoalModel
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND reference_month = ?", companyID, referenceMonth).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// Delete removes a consolidated goal from the database.
func (r *consolidatedGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ConsolidatedGoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
