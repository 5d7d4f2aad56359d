// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/vendagame/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for company registration.
type RegisterRequest struct {
	CompanyName string `json:"company_name" binding:"required,min=1,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Password    string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Profile      ProfileResponse  `json:"profile"`
	Company      *CompanyResponse `json:"company,omitempty"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileResponse represents profile data in API responses.
type ProfileResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	Level     string    `json:"level"`
	Badges    []string  `json:"badges"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyResponse represents company data in API responses.
type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// ToProfileResponse converts a domain Profile entity to a ProfileResponse DTO.
func ToProfileResponse(profile *entity.Profile) ProfileResponse {
	badges := profile.Badges
	if badges == nil {
		badges = []string{}
	}

	return ProfileResponse{
		ID:        profile.ID.String(),
		CompanyID: profile.CompanyID.String(),
		Email:     profile.Email,
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
		Role:      string(profile.Role),
		Level:     string(profile.DisplayLevel()),
		Badges:    badges,
		CreatedAt: profile.CreatedAt,
	}
}

// ToCompanyResponse converts a domain Company entity to a CompanyResponse DTO.
func ToCompanyResponse(company *entity.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:   company.ID.String(),
		Name: company.Name,
		Slug: company.Slug,
	}
}
