// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/domain/entity"
)

// CompanyModel represents the companies table in the database.
type CompanyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CompanyModel.
func (CompanyModel) TableName() string {
	return "companies"
}

// ToEntity converts a CompanyModel to a domain Company entity.
func (m *CompanyModel) ToEntity() *entity.Company {
	return &entity.Company{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CompanyFromEntity creates a CompanyModel from a domain Company entity.
func CompanyFromEntity(company *entity.Company) *CompanyModel {
	return &CompanyModel{
		ID:        company.ID,
		Name:      company.Name,
		Slug:      company.Slug,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}
