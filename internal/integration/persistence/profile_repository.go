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

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create creates a new profile in the database.
func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileModel := model.ProfileFromEntity(profile)
	result := r.db.WithContext(ctx).Create(profileModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a profile by its ID.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// FindByEmail retrieves a profile by its email address.
func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// Update updates an existing profile in the database.
func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileModel := model.ProfileFromEntity(profile)
	result := r.db.WithContext(ctx).Save(profileModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsByEmail checks if a profile with the given email exists.
func (r *profileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ProfileModel{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ListRankable retrieves the rankable profiles of a company, oldest
// account first. Leaderboard tie-breaking relies on this order.
func (r *profileRepository) ListRankable(ctx context.Context, companyID uuid.UUID) ([]*entity.Profile, error) {
	var profileModels []model.ProfileModel
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND role IN ?", companyID, []string{
			string(entity.RoleAdmin),
			string(entity.RoleSeller),
		}).
		Order("created_at ASC, id ASC").
		Find(&profileModels)
	if result.Error != nil {
		return nil, result.Error
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, profileModels[i].ToEntity())
	}
	return profiles, nil
}
