// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/vendagame/backend/internal/domain/entity"
)

// CreateSellerRequest represents the request body for adding a team member.
type CreateSellerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=seller admin"`
}

// UpdateProfileRequest represents the request body for profile updates.
type UpdateProfileRequest struct {
	Name      *string   `json:"name" binding:"omitempty,min=1,max=100"`
	AvatarURL *string   `json:"avatar_url" binding:"omitempty,max=500"`
	Level     *string   `json:"level" binding:"omitempty,oneof=Bronze Prata Ouro Diamante"`
	Badges    *[]string `json:"badges"`
}

// TeamResponse represents the response for the team listing.
type TeamResponse struct {
	Members []ProfileResponse `json:"members"`
}

// ToTeamResponse converts a list of profiles to a TeamResponse DTO.
func ToTeamResponse(members []*entity.Profile) TeamResponse {
	responses := make([]ProfileResponse, len(members))
	for i, m := range members {
		responses[i] = ToProfileResponse(m)
	}
	return TeamResponse{Members: responses}
}
