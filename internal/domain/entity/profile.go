// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfileRole represents the access level of a profile.
type ProfileRole string

const (
	// RoleSuperAdmin is a platform-level operator account. Superadmins can
	// view any company but are never ranked themselves.
	RoleSuperAdmin ProfileRole = "superadmin"
	// RoleAdmin manages a single company: sales approval, goal definition.
	RoleAdmin ProfileRole = "admin"
	// RoleSeller is a regular ranked seller.
	RoleSeller ProfileRole = "seller"
)

// ProfileLevel is the cosmetic gamification tier shown next to a seller.
type ProfileLevel string

const (
	LevelBronze  ProfileLevel = "Bronze"
	LevelPrata   ProfileLevel = "Prata"
	LevelOuro    ProfileLevel = "Ouro"
	LevelDiamante ProfileLevel = "Diamante"
)

// Profile represents a user account in the VendaGame system.
type Profile struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	AvatarURL    string
	Role         ProfileRole
	Level        ProfileLevel
	Badges       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProfile creates a new Profile with default gamification values.
func NewProfile(companyID uuid.UUID, email, name, passwordHash string, role ProfileRole) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:           uuid.New(),
		CompanyID:    companyID,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		Level:        LevelBronze,
		Badges:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsRankable reports whether this profile participates in rankings.
// Superadmin accounts are platform operators and never appear.
func (p *Profile) IsRankable() bool {
	return p.Role == RoleAdmin || p.Role == RoleSeller
}

// CanManageCompany reports whether this profile may define goals and
// approve sales for the given company.
func (p *Profile) CanManageCompany(companyID uuid.UUID) bool {
	if p.Role == RoleSuperAdmin {
		return true
	}
	return p.Role == RoleAdmin && p.CompanyID == companyID
}

// DisplayLevel returns the cosmetic tier, defaulting to Bronze when unset.
func (p *Profile) DisplayLevel() ProfileLevel {
	if p.Level == "" {
		return LevelBronze
	}
	return p.Level
}
