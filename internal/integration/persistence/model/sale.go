// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vendagame/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;index:idx_sales_company_date"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Product   string          `gorm:"type:varchar(255)"`
	Status    string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	SaleDate  time.Time       `gorm:"type:date;not null;index:idx_sales_company_date"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Sale{
		ID:        m.ID,
		SellerID:  m.SellerID,
		CompanyID: m.CompanyID,
		Amount:    m.Amount,
		Product:   m.Product,
		Status:    entity.SaleStatus(m.Status),
		SaleDate:  m.SaleDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	var deletedAt gorm.DeletedAt
	if sale.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *sale.DeletedAt, Valid: true}
	}

	return &SaleModel{
		ID:        sale.ID,
		SellerID:  sale.SellerID,
		CompanyID: sale.CompanyID,
		Amount:    sale.Amount,
		Product:   sale.Product,
		Status:    string(sale.Status),
		SaleDate:  sale.SaleDate,
		CreatedAt: sale.CreatedAt,
		UpdatedAt: sale.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
