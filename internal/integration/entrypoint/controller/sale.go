package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendagame/backend/internal/application/usecase/sale"
	"github.com/vendagame/backend/internal/domain/entity"
	domainerror "github.com/vendagame/backend/internal/domain/error"
	"github.com/vendagame/backend/internal/integration/entrypoint/dto"
)

// SaleController handles sale ledger HTTP requests.
type SaleController struct {
	createSaleUseCase       *sale.CreateSaleUseCase
	listSalesUseCase        *sale.ListSalesUseCase
	updateSaleStatusUseCase *sale.UpdateSaleStatusUseCase
	deleteSaleUseCase       *sale.DeleteSaleUseCase
}

// NewSaleController creates a new SaleController instance.
func NewSaleController(
	createSaleUseCase *sale.CreateSaleUseCase,
	listSalesUseCase *sale.ListSalesUseCase,
	updateSaleStatusUseCase *sale.UpdateSaleStatusUseCase,
	deleteSaleUseCase *sale.DeleteSaleUseCase,
) *SaleController {
	return &SaleController{
		createSaleUseCase:       createSaleUseCase,
		listSalesUseCase:        listSalesUseCase,
		updateSaleStatusUseCase: updateSaleStatusUseCase,
		deleteSaleUseCase:       deleteSaleUseCase,
	}
}

// Create handles POST /api/sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request format",
			Details: map[string]string{"validation": err.Error()},
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidSaleAmount),
		})
		return
	}

	saleDate, err := time.Parse("2006-01-02", req.SaleDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidSaleDate),
		})
		return
	}

	sellerID := uuid.Nil
	if req.SellerID != "" {
		sellerID, err = uuid.Parse(req.SellerID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid seller ID format",
			})
			return
		}
	}

	output, err := c.createSaleUseCase.Execute(ctx.Request.Context(), sale.CreateSaleInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		SellerID:       sellerID,
		Amount:         amount,
		Product:        req.Product,
		SaleDate:       saleDate,
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// List handles GET /api/sales requests. Sellers see their own ledger,
// managers see the whole company.
func (c *SaleController) List(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	companyID, ok := companyOverride(ctx)
	if !ok {
		return
	}

	var sellerID *uuid.UUID
	if raw := ctx.Query("seller_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid seller ID format",
			})
			return
		}
		sellerID = &id
	}

	output, err := c.listSalesUseCase.Execute(ctx.Request.Context(), sale.ListSalesInput{
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		CompanyID:      companyID,
		SellerID:       sellerID,
		Month:          ctx.Query("month"),
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output))
}

// UpdateStatus handles PATCH /api/sales/:id/status requests.
func (c *SaleController) UpdateStatus(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	saleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID format",
		})
		return
	}

	var req dto.UpdateSaleStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request format",
			Details: map[string]string{"validation": err.Error()},
		})
		return
	}

	output, err := c.updateSaleStatusUseCase.Execute(ctx.Request.Context(), sale.UpdateSaleStatusInput{
		SaleID:         saleID,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
		Status:         entity.SaleStatus(req.Status),
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Delete handles DELETE /api/sales/:id requests.
func (c *SaleController) Delete(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		return
	}

	saleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID format",
		})
		return
	}

	_, err = c.deleteSaleUseCase.Execute(ctx.Request.Context(), sale.DeleteSaleInput{
		SaleID:         saleID,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		ActorCompanyID: actor.CompanyID,
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSaleError handles sale errors and returns appropriate HTTP responses.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		statusCode := c.getStatusCodeForSaleError(saleErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
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

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func (c *SaleController) getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSaleAmount,
		domainerror.ErrCodeInvalidSaleDate,
		domainerror.ErrCodeInvalidSaleStatus,
		domainerror.ErrCodeMissingSaleFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeNotAuthorizedSale:
		return http.StatusForbidden
	case domainerror.ErrCodeSaleNotFound,
		domainerror.ErrCodeSaleSellerNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
