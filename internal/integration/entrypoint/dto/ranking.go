// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/vendagame/backend/internal/application/usecase/ranking"
	"github.com/vendagame/backend/internal/domain/entity"
)

// RankingEntryResponse represents one leaderboard row in API responses.
// Goal fields are omitted entirely when the seller has no goal for the
// month, so clients render "no goal" instead of a misleading 0%.
type RankingEntryResponse struct {
	SellerID        string   `json:"seller_id"`
	DisplayName     string   `json:"display_name"`
	AvatarURL       string   `json:"avatar_url,omitempty"`
	Level           string   `json:"level"`
	RankPosition    int      `json:"rank_position"`
	RealizedAmount  float64  `json:"realized_amount"`
	RealizedCompact string   `json:"realized_compact"`
	GoalAmount      *float64 `json:"goal_amount,omitempty"`
	GoalPercent     *float64 `json:"goal_percent,omitempty"`
	TeamGoalPercent *float64 `json:"team_goal_percent,omitempty"`
}

// RankingResponse represents the response for the monthly leaderboard.
type RankingResponse struct {
	Month     string                 `json:"month"`
	CompanyID string                 `json:"company_id"`
	Entries   []RankingEntryResponse `json:"entries"`
}

// PodiumResponse represents the response for the monthly podium.
type PodiumResponse struct {
	Month     string                 `json:"month"`
	CompanyID string                 `json:"company_id"`
	Podium    []RankingEntryResponse `json:"podium"`
}

// ContributorResponse represents one top seller behind a consolidated goal.
type ContributorResponse struct {
	SellerID        string  `json:"seller_id"`
	DisplayName     string  `json:"display_name"`
	AvatarURL       string  `json:"avatar_url,omitempty"`
	RealizedAmount  float64 `json:"realized_amount"`
	RealizedCompact string  `json:"realized_compact"`
}

// ContributorsResponse represents the response for a contributor listing.
type ContributorsResponse struct {
	GoalID       string                `json:"goal_id"`
	Month        string                `json:"month"`
	Contributors []ContributorResponse `json:"contributors"`
}

// ToRankingEntryResponse converts a ranking entry entity to a DTO.
func ToRankingEntryResponse(entry *entity.RankingEntry) RankingEntryResponse {
	realized, _ := entry.RealizedAmount.Float64()

	response := RankingEntryResponse{
		SellerID:        entry.SellerID.String(),
		DisplayName:     entry.DisplayName,
		AvatarURL:       entry.AvatarURL,
		Level:           string(entry.Level),
		RankPosition:    entry.RankPosition,
		RealizedAmount:  realized,
		RealizedCompact: FormatCompact(entry.RealizedAmount),
		GoalPercent:     entry.PercentOfIndividualGoal,
		TeamGoalPercent: entry.PercentOfConsolidatedGoal,
	}

	if entry.IndividualGoalAmount != nil {
		goalAmount, _ := entry.IndividualGoalAmount.Float64()
		response.GoalAmount = &goalAmount
	}

	return response
}

// ToRankingResponse converts a GetRankingOutput to a RankingResponse DTO.
func ToRankingResponse(output *ranking.GetRankingOutput) RankingResponse {
	entries := make([]RankingEntryResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = ToRankingEntryResponse(e)
	}
	return RankingResponse{
		Month:     output.Month,
		CompanyID: output.CompanyID.String(),
		Entries:   entries,
	}
}

// ToPodiumResponse converts a GetPodiumOutput to a PodiumResponse DTO.
func ToPodiumResponse(output *ranking.GetPodiumOutput) PodiumResponse {
	podium := make([]RankingEntryResponse, len(output.Podium))
	for i, e := range output.Podium {
		podium[i] = ToRankingEntryResponse(e)
	}
	return PodiumResponse{
		Month:     output.Month,
		CompanyID: output.CompanyID.String(),
		Podium:    podium,
	}
}

// ToContributorsResponse converts a GetGoalContributorsOutput to a DTO.
func ToContributorsResponse(output *ranking.GetGoalContributorsOutput) ContributorsResponse {
	contributors := make([]ContributorResponse, len(output.Contributors))
	for i, c := range output.Contributors {
		realized, _ := c.RealizedAmount.Float64()
		contributors[i] = ContributorResponse{
			SellerID:        c.SellerID.String(),
			DisplayName:     c.DisplayName,
			AvatarURL:       c.AvatarURL,
			RealizedAmount:  realized,
			RealizedCompact: FormatCompact(c.RealizedAmount),
		}
	}
	return ContributorsResponse{
		GoalID:       output.GoalID.String(),
		Month:        output.Month,
		Contributors: contributors,
	}
}
