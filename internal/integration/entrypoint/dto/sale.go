// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/vendagame/backend/internal/application/usecase/sale"
)

// CreateSaleRequest represents the request body for sale creation.
type CreateSaleRequest struct {
	SellerID string `json:"seller_id"` // optional; defaults to the caller
	Amount   string `json:"amount" binding:"required"`
	Product  string `json:"product" binding:"max=255"`
	SaleDate string `json:"sale_date" binding:"required"` // "YYYY-MM-DD"
}

// UpdateSaleStatusRequest represents the request body for a status change.
type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved pending refunded"`
}

// SaleResponse represents sale data in API responses.
type SaleResponse struct {
	ID         string  `json:"id"`
	SellerID   string  `json:"seller_id"`
	SellerName string  `json:"seller_name,omitempty"`
	CompanyID  string  `json:"company_id"`
	Amount     float64 `json:"amount"`
	Product    string  `json:"product,omitempty"`
	Status     string  `json:"status"`
	SaleDate   string  `json:"sale_date"`
	CreatedAt  string  `json:"created_at"`
}

// SaleListResponse represents the response for sale listing.
type SaleListResponse struct {
	Sales         []SaleResponse `json:"sales"`
	Month         string         `json:"month"`
	TotalApproved float64        `json:"total_approved"`
	TotalPending  float64        `json:"total_pending"`
}

// ToSaleResponse converts a use case sale output to a SaleResponse DTO.
func ToSaleResponse(output *sale.SaleOutput) SaleResponse {
	amount, _ := output.Amount.Float64()
	return SaleResponse{
		ID:         output.ID.String(),
		SellerID:   output.SellerID.String(),
		SellerName: output.SellerName,
		CompanyID:  output.CompanyID.String(),
		Amount:     amount,
		Product:    output.Product,
		Status:     string(output.Status),
		SaleDate:   output.SaleDate.Format("2006-01-02"),
		CreatedAt:  output.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToSaleListResponse converts a ListSalesOutput to a SaleListResponse DTO.
func ToSaleListResponse(output *sale.ListSalesOutput) SaleListResponse {
	sales := make([]SaleResponse, len(output.Sales))
	for i, s := range output.Sales {
		sales[i] = ToSaleResponse(s)
	}

	totalApproved, _ := output.TotalApproved.Float64()
	totalPending, _ := output.TotalPending.Float64()

	return SaleListResponse{
		Sales:         sales,
		Month:         output.Month,
		TotalApproved: totalApproved,
		TotalPending:  totalPending,
	}
}
