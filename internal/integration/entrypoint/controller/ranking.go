package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/application/usecase/ranking"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/integration/entrypoint/dto"
)

// RankingController handles leaderboard HTTP requests.
type RankingController struct {
	getRankingUseCase          *ranking.GetRankingUseCase
	getPodiumUseCase           *ranking.GetPodiumUseCase
	getGoalContributorsUseCase *ranking.GetGoalContributorsUseCase
}

// NewRankingController creates a new RankingController instance.
func NewRankingController(
	getRankingUseCase *ranking.GetRankingUseCase,
	getPodiumUseCase *ranking.GetPodiumUseCase,
	getGoalContributorsUseCase *ranking.GetGoalContributorsUseCase,
) *RankingController {
	return &RankingController{
		getRankingUseCase:          getRankingUseCase,
		getPodiumUseCase:           getPodiumUseCase,
		getGoalContributorsUseCase: getGoalContributorsUseCase,
	}
}

// GetRanking handles GET /api/ranking requests.
func (c *RankingController) GetRanking(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	companyID, ok := companyOverride(ctx)
	if !ok {
		return
	}

	output, err := c.getRankingUseCase.Execute(ctx.Request.Context(), ranking.GetRankingInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		CompanyID:      companyID,
		Month:          ctx.Query("month"),
	})
	if err != nil {
		c.handleRankingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRankingResponse(output))
}

// GetPodium handles GET /api/ranking/podium requests.
func (c *RankingController) GetPodium(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	companyID, ok := companyOverride(ctx)
	if !ok {
		return
	}

	output, err := c.getPodiumUseCase.Execute(ctx.Request.Context(), ranking.GetPodiumInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		CompanyID:      companyID,
		Month:          ctx.Query("month"),
	})
	if err != nil {
		c.handleRankingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPodiumResponse(output))
}

// GetGoalContributors handles GET /api/goals/consolidated/:id/contributors
// requests.
func (c *RankingController) GetGoalContributors(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.getGoalContributorsUseCase.Execute(ctx.Request.Context(), ranking.GetGoalContributorsInput{
		GoalID:         goalID,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
	})
	if err != nil {
		c.handleRankingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContributorsResponse(output))
}

// handleRankingError handles ranking errors and returns appropriate HTTP responses.
func (c *RankingController) handleRankingError(ctx *gin.Context, err error) {
	var rankingErr *domainerror.RankingError
	if errors.As(err, &rankingErr) {
		statusCode := c.getStatusCodeForRankingError(rankingErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rankingErr.Message,
			Code:  string(rankingErr.Code),
		})
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := http.StatusBadRequest
		if goalErr.Code == domainerror.ErrCodeGoalNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRankingError maps ranking error codes to HTTP status codes.
func (c *RankingController) getStatusCodeForRankingError(code domainerror.RankingErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidRankingMonth,
		domainerror.ErrCodeInvalidYear,
		domainerror.ErrCodeMissingCompanyScope:
		return http.StatusBadRequest
	case domainerror.ErrCodeNotAuthorizedForCompany:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
