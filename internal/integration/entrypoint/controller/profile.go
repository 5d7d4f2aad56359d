package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/application/usecase/profile"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles team and profile HTTP requests.
type ProfileController struct {
	createSellerUseCase  *profile.CreateSellerUseCase
	listTeamUseCase      *profile.ListTeamUseCase
	updateProfileUseCase *profile.UpdateProfileUseCase
	getMeUseCase         *profile.GetMeUseCase
}

// NewProfileController creates a new ProfileController instance.
func NewProfileController(
	createSellerUseCase *profile.CreateSellerUseCase,
	listTeamUseCase *profile.ListTeamUseCase,
	updateProfileUseCase *profile.UpdateProfileUseCase,
	getMeUseCase *profile.GetMeUseCase,
) *ProfileController {
	return &ProfileController{
		createSellerUseCase:  createSellerUseCase,
		listTeamUseCase:      listTeamUseCase,
		updateProfileUseCase: updateProfileUseCase,
		getMeUseCase:         getMeUseCase,
	}
}

// CreateSeller handles POST /api/team requests. Admins add sellers or
// other admins to their own company.
func (c *ProfileController) CreateSeller(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateSellerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request format",
			Details: map[string]string{"validation": err.Error()},
		})
		return
	}

	output, err := c.createSellerUseCase.Execute(ctx.Request.Context(), profile.CreateSellerInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		Email:          req.Email,
		Name:           req.Name,
		Password:       req.Password,
		Role:           entity.ProfileRole(req.Role),
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProfileResponse(output.Profile))
}

// ListTeam handles GET /api/team requests.
func (c *ProfileController) ListTeam(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	companyID, ok := companyOverride(ctx)
	if !ok {
		return
	}

	output, err := c.listTeamUseCase.Execute(ctx.Request.Context(), profile.ListTeamInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		CompanyID:      companyID,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeamResponse(output.Members))
}

// Me handles GET /api/profiles/me requests.
func (c *ProfileController) Me(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	output, err := c.getMeUseCase.Execute(ctx.Request.Context(), profile.GetMeInput{
		ActorID: actor.ID,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// UpdateProfile handles PATCH /api/profiles/:id requests. Profiles may
// edit their own name and avatar; level and badges are manager-only.
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	profileID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid profile ID format",
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request format",
			Details: map[string]string{"validation": err.Error()},
		})
		return
	}

	var level *entity.ProfileLevel
	if req.Level != nil {
		parsed := entity.ProfileLevel(*req.Level)
		level = &parsed
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), profile.UpdateProfileInput{
		ProfileID:      profileID,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		Name:           req.Name,
		AvatarURL:      req.AvatarURL,
		Level:          level,
		Badges:         req.Badges,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// handleProfileError handles profile errors and returns appropriate HTTP responses.
func (c *ProfileController) handleProfileError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := c.getStatusCodeForProfileError(authErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
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

// getStatusCodeForProfileError maps auth error codes raised by profile
// operations to HTTP status codes.
func (c *ProfileController) getStatusCodeForProfileError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeInvalidRole:
		return http.StatusBadRequest
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
