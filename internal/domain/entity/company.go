// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a tenant in the VendaGame system. Every seller,
// sale and goal belongs to exactly one company.
type Company struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCompany creates a new Company entity.
func NewCompany(name, slug string) *Company {
	now := time.Now().UTC()
	return &Company{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
