// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/vendagame/backend/internal/domain/entity"
)

// ProfileModel represents the profiles table in the database.
type ProfileModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID      `gorm:"type:uuid;index;not null"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string         `gorm:"type:varchar(100);not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	AvatarURL    string         `gorm:"type:varchar(500)"`
	Role         string         `gorm:"type:varchar(20);not null;default:'seller'"`
	Level        string         `gorm:"type:varchar(20);not null;default:'Bronze'"`
	Badges       pq.StringArray `gorm:"type:text[]"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	badges := make([]string, len(m.Badges))
	copy(badges, m.Badges)

	return &entity.Profile{
		ID:           m.ID,
		CompanyID:    m.CompanyID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		AvatarURL:    m.AvatarURL,
		Role:         entity.ProfileRole(m.Role),
		Level:        entity.ProfileLevel(m.Level),
		Badges:       badges,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileFromEntity(profile *entity.Profile) *ProfileModel {
	badges := make(pq.StringArray, len(profile.Badges))
	copy(badges, profile.Badges)

	return &ProfileModel{
		ID:           profile.ID,
		CompanyID:    profile.CompanyID,
		Email:        profile.Email,
		Name:         profile.Name,
		PasswordHash: profile.PasswordHash,
		AvatarURL:    profile.AvatarURL,
		Role:         string(profile.Role),
		Level:        string(profile.Level),
		Badges:       badges,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	ProfileID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
