package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/integration/entrypoint/dto"
	"github.com/vendagame/backend/internal/integration/entrypoint/middleware"
)

// actorContext bundles the authenticated caller's identity as stored in
// the request context by the auth middleware.
type actorContext struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Role      entity.ProfileRole
}

// getActor extracts the authenticated caller from the Gin context,
// writing the 401 response itself when the context is incomplete.
func getActor(ctx *gin.Context) (actorContext, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return actorContext{}, false
	}
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return actorContext{}, false
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return actorContext{}, false
	}

	return actorContext{ID: userID, CompanyID: companyID, Role: role}, true
}

func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// companyOverride parses the optional company_id query parameter used by
// superadmins to inspect a specific company.
func companyOverride(ctx *gin.Context) (uuid.UUID, bool) {
	raw := ctx.Query("company_id")
	if raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid company ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
