// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/vendagame/backend/internal/application/usecase/dashboard"
)

// ConsolidatedHealthResponse represents the company-goal slice of the
// team health response.
type ConsolidatedHealthResponse struct {
	TargetAmount  float64 `json:"target_amount"`
	TargetCompact string  `json:"target_compact"`
	Percent       float64 `json:"percent"`
	VisualPercent float64 `json:"visual_percent"`
	Shortfall     float64 `json:"shortfall"`
	Status        string  `json:"status"`
}

// TeamHealthResponse represents the response for the team health rollup.
type TeamHealthResponse struct {
	Month               string                      `json:"month"`
	CompanyID           string                      `json:"company_id"`
	TeamRealized        float64                     `json:"team_realized"`
	TeamCompact         string                      `json:"team_compact"`
	SellerCount         int                         `json:"seller_count"`
	SellersWithGoal     int                         `json:"sellers_with_goal"`
	SellersOnTarget     int                         `json:"sellers_on_target"`
	TotalTarget         float64                     `json:"total_target"`
	TotalTargetCompact  string                      `json:"total_target_compact"`
	TeamProgressPercent float64                     `json:"team_progress_percent"`
	AveragePercent      float64                     `json:"average_percent"`
	Consolidated        *ConsolidatedHealthResponse `json:"consolidated,omitempty"`
}

// MonthlyPointResponse represents one month of the yearly series.
type MonthlyPointResponse struct {
	Month           string   `json:"month"`
	Realized        float64  `json:"realized"`
	RealizedCompact string   `json:"realized_compact"`
	TargetAmount    *float64 `json:"target_amount,omitempty"`
}

// MonthlySeriesResponse represents the response for the yearly series.
type MonthlySeriesResponse struct {
	Year      int                    `json:"year"`
	CompanyID string                 `json:"company_id"`
	Points    []MonthlyPointResponse `json:"points"`
}

// ToTeamHealthResponse converts a GetTeamHealthOutput to a DTO.
func ToTeamHealthResponse(output *dashboard.GetTeamHealthOutput) TeamHealthResponse {
	teamRealized, _ := output.TeamRealized.Float64()
	totalTarget, _ := output.TotalTarget.Float64()

	response := TeamHealthResponse{
		Month:               output.Month,
		CompanyID:           output.CompanyID.String(),
		TeamRealized:        teamRealized,
		TeamCompact:         FormatCompact(output.TeamRealized),
		SellerCount:         output.SellerCount,
		SellersWithGoal:     output.SellersWithGoal,
		SellersOnTarget:     output.SellersOnTarget,
		TotalTarget:         totalTarget,
		TotalTargetCompact:  FormatCompact(output.TotalTarget),
		TeamProgressPercent: output.TeamProgressPercent,
		AveragePercent:      output.AveragePercent,
	}

	if output.Consolidated != nil {
		target, _ := output.Consolidated.TargetAmount.Float64()
		shortfall, _ := output.Consolidated.Shortfall.Float64()
		response.Consolidated = &ConsolidatedHealthResponse{
			TargetAmount:  target,
			TargetCompact: FormatCompact(output.Consolidated.TargetAmount),
			Percent:       output.Consolidated.Percent,
			VisualPercent: output.Consolidated.VisualPercent,
			Shortfall:     shortfall,
			Status:        string(output.Consolidated.Status),
		}
	}

	return response
}

// ToMonthlySeriesResponse converts a GetMonthlySeriesOutput to a DTO.
func ToMonthlySeriesResponse(output *dashboard.GetMonthlySeriesOutput) MonthlySeriesResponse {
	points := make([]MonthlyPointResponse, len(output.Points))
	for i, p := range output.Points {
		realized, _ := p.Realized.Float64()
		point := MonthlyPointResponse{
			Month:           p.Month,
			Realized:        realized,
			RealizedCompact: FormatCompact(p.Realized),
		}
		if p.TargetAmount != nil {
			target, _ := p.TargetAmount.Float64()
			point.TargetAmount = &target
		}
		points[i] = point
	}

	return MonthlySeriesResponse{
		Year:      output.Year,
		CompanyID: output.CompanyID.String(),
		Points:    points,
	}
}
