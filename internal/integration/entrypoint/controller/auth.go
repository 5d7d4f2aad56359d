package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendagame/backend/internal/application/usecase/auth"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication-related HTTP requests.
type AuthController struct {
	registerCompanyUseCase *auth.RegisterCompanyUseCase
	loginUserUseCase       *auth.LoginUserUseCase
	refreshTokenUseCase    *auth.RefreshTokenUseCase
	logoutUserUseCase      *auth.LogoutUserUseCase
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(
	registerCompanyUseCase *auth.RegisterCompanyUseCase,
	loginUserUseCase *auth.LoginUserUseCase,
	refreshTokenUseCase *auth.RefreshTokenUseCase,
	logoutUserUseCase *auth.LogoutUserUseCase,
) *AuthController {
	return &AuthController{
		registerCompanyUseCase: registerCompanyUseCase,
		loginUserUseCase:       loginUserUseCase,
		refreshTokenUseCase:    refreshTokenUseCase,
		logoutUserUseCase:      logoutUserUseCase,
	}
}

// Register handles POST /api/auth/register requests. It creates a new
// company tenant together with its first admin profile.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request format",
			Details: map[string]string{"validation": err.Error()},
		})
		return
	}

	output, err := c.registerCompanyUseCase.Execute(ctx.Request.Context(), auth.RegisterCompanyInput{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Name:        req.Name,
		Password:    req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	company := dto.ToCompanyResponse(output.Company)
	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Profile:      dto.ToProfileResponse(output.Profile),
		Company:      company,
	})
}

// Login handles POST /api/auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request format",
			Details: map[string]string{"validation": err.Error()},
		})
		return
	}

	output, err := c.loginUserUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Profile:      dto.ToProfileResponse(output.Profile),
	})
}

// RefreshToken handles POST /api/auth/refresh requests.
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request format",
			Details: map[string]string{"validation": err.Error()},
		})
		return
	}

	output, err := c.refreshTokenUseCase.Execute(ctx.Request.Context(), auth.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Logout handles POST /api/auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request format",
			Details: map[string]string{"validation": err.Error()},
		})
		return
	}

	output, err := c.logoutUserUseCase.Execute(ctx.Request.Context(), auth.LogoutUserInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleAuthError handles authentication errors and returns appropriate HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := c.getStatusCodeForAuthError(authErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeMissingCompanyName,
		domainerror.ErrCodeInvalidRole:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUnauthorized:
		return http.StatusForbidden
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
