package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendagame/backend/internal/application/usecase/goal"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal-related HTTP requests.
type GoalController struct {
	setIndividualGoalUseCase      *goal.SetIndividualGoalUseCase
	listIndividualGoalsUseCase    *goal.ListIndividualGoalsUseCase
	getIndividualGoalUseCase      *goal.GetIndividualGoalUseCase
	deleteIndividualGoalUseCase   *goal.DeleteIndividualGoalUseCase
	setConsolidatedGoalUseCase    *goal.SetConsolidatedGoalUseCase
	getConsolidatedGoalUseCase    *goal.GetConsolidatedGoalUseCase
	deleteConsolidatedGoalUseCase *goal.DeleteConsolidatedGoalUseCase
}

// NewGoalController creates a new GoalController instance.
func NewGoalController(
	setIndividualGoalUseCase *goal.SetIndividualGoalUseCase,
	listIndividualGoalsUseCase *goal.ListIndividualGoalsUseCase,
	getIndividualGoalUseCase *goal.GetIndividualGoalUseCase,
	deleteIndividualGoalUseCase *goal.DeleteIndividualGoalUseCase,
	setConsolidatedGoalUseCase *goal.SetConsolidatedGoalUseCase,
	getConsolidatedGoalUseCase *goal.GetConsolidatedGoalUseCase,
	deleteConsolidatedGoalUseCase *goal.DeleteConsolidatedGoalUseCase,
) *GoalController {
	return &GoalController{
		setIndividualGoalUseCase:      setIndividualGoalUseCase,
		listIndividualGoalsUseCase:    listIndividualGoalsUseCase,
		getIndividualGoalUseCase:      getIndividualGoalUseCase,
		deleteIndividualGoalUseCase:   deleteIndividualGoalUseCase,
		setConsolidatedGoalUseCase:    setConsolidatedGoalUseCase,
		getConsolidatedGoalUseCase:    getConsolidatedGoalUseCase,
		deleteConsolidatedGoalUseCase: deleteConsolidatedGoalUseCase,
	}
}

// SetIndividual handles PUT /api/goals/individual requests. Repeated
// calls for the same seller and month overwrite the target.
func (c *GoalController) SetIndividual(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	var req dto.SetIndividualGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request format",
			Details: map[string]string{"validation": err.Error()},
		})
		return
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid seller ID format",
		})
		return
	}

	targetAmount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target amount format",
			Code:  string(domainerror.ErrCodeInvalidTargetAmount),
		})
		return
	}

	output, err := c.setIndividualGoalUseCase.Execute(ctx.Request.Context(), goal.SetIndividualGoalInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		SellerID:       sellerID,
		ReferenceMonth: req.ReferenceMonth,
		TargetAmount:   targetAmount,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIndividualGoalResponse(output.Goal))
}

// ListIndividual handles GET /api/goals/individual requests.
func (c *GoalController) ListIndividual(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	companyID, ok := companyOverride(ctx)
	if !ok {
		return
	}

	output, err := c.listIndividualGoalsUseCase.Execute(ctx.Request.Context(), goal.ListIndividualGoalsInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		CompanyID:      companyID,
		ReferenceMonth: ctx.Query("month"),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIndividualGoalListResponse(output))
}

// GetIndividual handles GET /api/goals/individual/:seller_id and
// GET /api/goals/me requests. The latter reads the caller's own goal.
func (c *GoalController) GetIndividual(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	sellerID := uuid.Nil
	if raw := ctx.Param("seller_id"); raw != "" {
		var err error
		sellerID, err = uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid seller ID format",
			})
			return
		}
	}

	output, err := c.getIndividualGoalUseCase.Execute(ctx.Request.Context(), goal.GetIndividualGoalInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		SellerID:       sellerID,
		ReferenceMonth: ctx.Query("month"),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIndividualGoalResponse(output.Goal))
}

// DeleteIndividual handles DELETE /api/goals/individual/:id requests.
func (c *GoalController) DeleteIndividual(ctx *gin.Context) {
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

	_, err = c.deleteIndividualGoalUseCase.Execute(ctx.Request.Context(), goal.DeleteIndividualGoalInput{
		GoalID:         goalID,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetConsolidated handles PUT /api/goals/consolidated requests.
func (c *GoalController) SetConsolidated(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	var req dto.SetConsolidatedGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request format",
			Details: map[string]string{"validation": err.Error()},
		})
		return
	}

	companyID := uuid.Nil
	if req.CompanyID != "" {
		var err error
		companyID, err = uuid.Parse(req.CompanyID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid company ID format",
			})
			return
		}
	}

	targetAmount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target amount format",
			Code:  string(domainerror.ErrCodeInvalidTargetAmount),
		})
		return
	}

	output, err := c.setConsolidatedGoalUseCase.Execute(ctx.Request.Context(), goal.SetConsolidatedGoalInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		CompanyID:      companyID,
		ReferenceMonth: req.ReferenceMonth,
		TargetAmount:   targetAmount,
		Description:    req.Description,
		TargetProduct:  req.TargetProduct,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConsolidatedGoalResponse(output.Goal))
}

// GetConsolidated handles GET /api/goals/consolidated requests.
func (c *GoalController) GetConsolidated(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	companyID, ok := companyOverride(ctx)
	if !ok {
		return
	}

	output, err := c.getConsolidatedGoalUseCase.Execute(ctx.Request.Context(), goal.GetConsolidatedGoalInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		CompanyID:      companyID,
		ReferenceMonth: ctx.Query("month"),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConsolidatedGoalResponse(output.Goal))
}

// DeleteConsolidated handles DELETE /api/goals/consolidated/:id requests.
func (c *GoalController) DeleteConsolidated(ctx *gin.Context) {
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

	_, err = c.deleteConsolidatedGoalUseCase.Execute(ctx.Request.Context(), goal.DeleteConsolidatedGoalInput{
		GoalID:         goalID,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

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

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidReferenceMonth,
		domainerror.ErrCodeMissingSeller,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeSellerNotInCompany,
		domainerror.ErrCodeNotAuthorizedToManageGoals:
		return http.StatusForbidden
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
