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

// individualGoalRepository implements the adapter.IndividualGoalRepository interface.
type individualGoalRepository struct {
	db *gorm.DB
}

// NewIndividualGoalRepository creates a new individual goal repository instance.
func NewIndividualGoalRepository(db *gorm.DB) adapter.IndividualGoalRepository {
	return &individualGoalRepository{
		db: db,
	}
}

// Upsert inserts the goal or updates the existing row for the same
// (seller, month) in one statement. The unique index resolves concurrent
// definitions inside the database, so no read-check-write race exists.
func (r *individualGoalRepository) Upsert(ctx context.Context, goal *entity.IndividualGoal) (*entity.IndividualGoal, error) {
	goalModel := model.IndividualGoalFromEntity(goal)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "seller_id"}, {Name: "reference_month"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"target_amount": goalModel.TargetAmount,
				"updated_at":    time.Now().UTC(),
			}),
		}).
		Create(goalModel)
	if result.Error != nil {
		return nil, result.Error
	}

	// Reread so the caller always sees the winning row, including the ID
	// of a pre-existing goal that was updated in place.
	return r.FindBySellerAndMonth(ctx, goal.SellerID, goal.ReferenceMonth)
}

// FindByID retrieves an individual goal by its ID.
func (r *individualGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.IndividualGoal, error) {
	var goalModel model.IndividualGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindBySellerAndMonth retrieves the goal for (seller, month), or nil
// when none is defined.
func (r *individualGoalRepository) FindBySellerAndMonth(ctx context.Context, sellerID uuid.UUID, referenceMonth time.Time) (*entity.IndividualGoal, error) {
	var goalModel model.IndividualGoalModel
	result := r.db.WithContext(ctx).
		Where("seller_id = ? AND reference_month = ?", sellerID, referenceMonth).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// ListByCompanyAndMonth retrieves all individual goals of a company for
// the given month.
func (r *individualGoalRepository) ListByCompanyAndMonth(ctx context.Context, companyID uuid.UUID, referenceMonth time.Time) ([]*entity.IndividualGoal, error) {
	var goalModels []model.IndividualGoalModel
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND reference_month = ?", companyID, referenceMonth).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.IndividualGoal, 0, len(goalModels))
	for i := range goalModels {
		goals = append(goals, goalModels[i].ToEntity())
	}
	return goals, nil
}

// Delete removes an individual goal from the database.
func (r *individualGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IndividualGoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
