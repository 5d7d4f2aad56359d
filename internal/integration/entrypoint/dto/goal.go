// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/vendagame/backend/internal/application/usecase/goal"
)

// SetIndividualGoalRequest represents the request body for defining a
// seller's monthly target.
type SetIndividualGoalRequest struct {
	SellerID       string `json:"seller_id" binding:"required,uuid"`
	ReferenceMonth string `json:"reference_month" binding:"required"` // "YYYY-MM"
	TargetAmount   string `json:"target_amount" binding:"required"`
}

// SetConsolidatedGoalRequest represents the request body for defining a
// company-wide monthly target.
type SetConsolidatedGoalRequest struct {
	CompanyID      string `json:"company_id"` // superadmin override
	ReferenceMonth string `json:"reference_month" binding:"required"`
	TargetAmount   string `json:"target_amount" binding:"required"`
	Description    string `json:"description" binding:"max=500"`
	TargetProduct  string `json:"target_product" binding:"max=255"`
}

// ProgressResponse represents derived goal progress in API responses.
type ProgressResponse struct {
	RealizedAmount  float64 `json:"realized_amount"`
	RealizedCompact string  `json:"realized_compact"`
	Percent         float64 `json:"percent"`
	VisualPercent   float64 `json:"visual_percent"`
	Shortfall       float64 `json:"shortfall"`
	Status          string  `json:"status"`
}

// IndividualGoalResponse represents an individual goal in API responses.
type IndividualGoalResponse struct {
	ID             string            `json:"id"`
	SellerID       string            `json:"seller_id"`
	SellerName     string            `json:"seller_name,omitempty"`
	CompanyID      string            `json:"company_id"`
	ReferenceMonth string            `json:"reference_month"`
	TargetAmount   float64           `json:"target_amount"`
	TargetCompact  string            `json:"target_compact"`
	Progress       *ProgressResponse `json:"progress,omitempty"`
}

// IndividualGoalListResponse represents the response for goal listing.
type IndividualGoalListResponse struct {
	Goals []IndividualGoalResponse `json:"goals"`
	Month string                   `json:"month"`
}

// ConsolidatedGoalResponse represents a consolidated goal in API responses.
type ConsolidatedGoalResponse struct {
	ID             string            `json:"id"`
	CompanyID      string            `json:"company_id"`
	ReferenceMonth string            `json:"reference_month"`
	TargetAmount   float64           `json:"target_amount"`
	TargetCompact  string            `json:"target_compact"`
	Description    string            `json:"description,omitempty"`
	TargetProduct  string            `json:"target_product,omitempty"`
	Progress       *ProgressResponse `json:"progress,omitempty"`
}

// ToProgressResponse converts a use case progress output to a DTO.
func ToProgressResponse(output *goal.ProgressOutput) *ProgressResponse {
	if output == nil {
		return nil
	}
	realized, _ := output.RealizedAmount.Float64()
	shortfall, _ := output.Shortfall.Float64()
	return &ProgressResponse{
		RealizedAmount:  realized,
		RealizedCompact: FormatCompact(output.RealizedAmount),
		Percent:         output.Percent,
		VisualPercent:   output.VisualPercent,
		Shortfall:       shortfall,
		Status:          string(output.Status),
	}
}

// ToIndividualGoalResponse converts a use case goal output to a DTO.
func ToIndividualGoalResponse(output *goal.IndividualGoalOutput) IndividualGoalResponse {
	target, _ := output.TargetAmount.Float64()
	return IndividualGoalResponse{
		ID:             output.ID.String(),
		SellerID:       output.SellerID.String(),
		SellerName:     output.SellerName,
		CompanyID:      output.CompanyID.String(),
		ReferenceMonth: output.ReferenceMonth,
		TargetAmount:   target,
		TargetCompact:  FormatCompact(output.TargetAmount),
		Progress:       ToProgressResponse(output.Progress),
	}
}

// ToIndividualGoalListResponse converts a goal listing output to a DTO.
func ToIndividualGoalListResponse(output *goal.ListIndividualGoalsOutput) IndividualGoalListResponse {
	goals := make([]IndividualGoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = ToIndividualGoalResponse(g)
	}
	return IndividualGoalListResponse{
		Goals: goals,
		Month: output.Month,
	}
}

// ToConsolidatedGoalResponse converts a use case goal output to a DTO.
func ToConsolidatedGoalResponse(output *goal.ConsolidatedGoalOutput) ConsolidatedGoalResponse {
	target, _ := output.TargetAmount.Float64()
	return ConsolidatedGoalResponse{
		ID:             output.ID.String(),
		CompanyID:      output.CompanyID.String(),
		ReferenceMonth: output.ReferenceMonth,
		TargetAmount:   target,
		TargetCompact:  FormatCompact(output.TargetAmount),
		Description:    output.Description,
		TargetProduct:  output.TargetProduct,
		Progress:       ToProgressResponse(output.Progress),
	}
}
