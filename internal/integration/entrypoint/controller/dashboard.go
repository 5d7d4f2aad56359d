package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vendagame/backend/internal/application/usecase/dashboard"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles manager dashboard HTTP requests.
type DashboardController struct {
	getTeamHealthUseCase    *dashboard.GetTeamHealthUseCase
	getMonthlySeriesUseCase *dashboard.GetMonthlySeriesUseCase
}

// NewDashboardController creates a new DashboardController instance.
func NewDashboardController(
	getTeamHealthUseCase *dashboard.GetTeamHealthUseCase,
	getMonthlySeriesUseCase *dashboard.GetMonthlySeriesUseCase,
) *DashboardController {
	return &DashboardController{
		getTeamHealthUseCase:    getTeamHealthUseCase,
		getMonthlySeriesUseCase: getMonthlySeriesUseCase,
	}
}

// GetTeamHealth handles GET /api/dashboard/team-health requests.
func (c *DashboardController) GetTeamHealth(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	companyID, ok := companyOverride(ctx)
	if !ok {
		return
	}

	output, err := c.getTeamHealthUseCase.Execute(ctx.Request.Context(), dashboard.GetTeamHealthInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		CompanyID:      companyID,
		Month:          ctx.Query("month"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeamHealthResponse(output))
}

// GetMonthlySeries handles GET /api/dashboard/monthly-series requests.
func (c *DashboardController) GetMonthlySeries(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	companyID, ok := companyOverride(ctx)
	if !ok {
		return
	}

	year := 0
	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year format",
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		year = parsed
	}

	output, err := c.getMonthlySeriesUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlySeriesInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		CompanyID:      companyID,
		Year:           year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var rankingErr *domainerror.RankingError
	if errors.As(err, &rankingErr) {
		statusCode := http.StatusBadRequest
		if rankingErr.Code == domainerror.ErrCodeNotAuthorizedForCompany {
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rankingErr.Message,
			Code:  string(rankingErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
