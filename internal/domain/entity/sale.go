// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus represents the approval state of a sale.
type SaleStatus string

const (
	SaleStatusApproved SaleStatus = "approved"
	SaleStatusPending  SaleStatus = "pending"
	SaleStatusRefunded SaleStatus = "refunded"
)

// Sale represents a single sale record in the ledger.
type Sale struct {
	ID        uuid.UUID
	SellerID  uuid.UUID
	CompanyID uuid.UUID
	Amount    decimal.Decimal
	Product   string
	Status    SaleStatus
	SaleDate  time.Time // date-only semantics; time-of-day is ignored
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewSale creates a new Sale entity. Status defaults to pending.
func NewSale(sellerID, companyID uuid.UUID, amount decimal.Decimal, product string, saleDate time.Time) *Sale {
	now := time.Now().UTC()
	return &Sale{
		ID:        uuid.New(),
		SellerID:  sellerID,
		CompanyID: companyID,
		Amount:    amount,
		Product:   product,
		Status:    SaleStatusPending,
		SaleDate:  truncateToDay(saleDate),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CountsTowardGoals reports whether this sale contributes to realized
// amounts. Only approved sales count; pending and refunded never do.
func (s *Sale) CountsTowardGoals() bool {
	return s.Status == SaleStatusApproved
}

// InWindow reports whether the sale date falls inside [start, end]
// inclusive, comparing calendar days only.
func (s *Sale) InWindow(start, end time.Time) bool {
	d := truncateToDay(s.SaleDate)
	return !d.Before(truncateToDay(start)) && !d.After(truncateToDay(end))
}

// RealizedTotal sums the amounts of all approved sales whose date falls
// within [start, end] inclusive. This is the single source of truth for
// goal realization: totals are always recomputed from raw sales, never
// read from a maintained counter.
func RealizedTotal(sales []*Sale, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		if s.CountsTowardGoals() && s.InWindow(start, end) {
			total = total.Add(s.Amount)
		}
	}
	return total
}

// RealizedTotalsBySeller groups RealizedTotal by seller. Sellers with no
// qualifying sales are absent from the map; callers decide how to render
// zero.
func RealizedTotalsBySeller(sales []*Sale, start, end time.Time) map[uuid.UUID]decimal.Decimal {
	totals := make(map[uuid.UUID]decimal.Decimal)
	for _, s := range sales {
		if s.CountsTowardGoals() && s.InWindow(start, end) {
			totals[s.SellerID] = totals[s.SellerID].Add(s.Amount)
		}
	}
	return totals
}

// truncateToDay strips the time-of-day component, normalizing to UTC so
// comparisons are calendar-day only.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidSaleStatus reports whether the given status is one of the known
// ledger states.
func ValidSaleStatus(status SaleStatus) bool {
	return status == SaleStatusApproved ||
		status == SaleStatusPending ||
		status == SaleStatusRefunded
}
