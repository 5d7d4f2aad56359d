// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewSale(t *testing.T) {
	sellerID := uuid.New()
	companyID := uuid.New()

	t.Run("status defaults to pending", func(t *testing.T) {
		s := NewSale(sellerID, companyID, dec("100"), "Plano Pro", day(2025, time.March, 10))
		if s.Status != SaleStatusPending {
			t.Errorf("expected pending, got %s", s.Status)
		}
	})

	t.Run("sale date is truncated to the calendar day", func(t *testing.T) {
		noisy := time.Date(2025, time.March, 10, 23, 45, 12, 0, time.FixedZone("BRT", -3*3600))
		s := NewSale(sellerID, companyID, dec("100"), "", noisy)
		if !s.SaleDate.Equal(day(2025, time.March, 10)) {
			t.Errorf("expected date-only 2025-03-10, got %v", s.SaleDate)
		}
	})
}

func TestSaleCountsTowardGoals(t *testing.T) {
	s := NewSale(uuid.New(), uuid.New(), dec("100"), "", day(2025, time.March, 10))

	s.Status = SaleStatusPending
	if s.CountsTowardGoals() {
		t.Error("pending sale must not count")
	}

	s.Status = SaleStatusRefunded
	if s.CountsTowardGoals() {
		t.Error("refunded sale must not count")
	}

	s.Status = SaleStatusApproved
	if !s.CountsTowardGoals() {
		t.Error("approved sale must count")
	}
}

func TestRealizedTotal(t *testing.T) {
	sellerID := uuid.New()
	companyID := uuid.New()

	approved := func(amount, date string) *Sale {
		d, _ := time.Parse("2006-01-02", date)
		s := NewSale(sellerID, companyID, dec(amount), "", d)
		s.Status = SaleStatusApproved
		return s
	}

	t.Run("sums only approved sales inside the window", func(t *testing.T) {
		pending := NewSale(sellerID, companyID, dec("999"), "", day(2025, time.March, 15))

		sales := []*Sale{
			approved("100.50", "2025-03-01"),
			approved("200.25", "2025-03-31"),
			approved("50", "2025-04-01"), // next month
			approved("75", "2025-02-28"), // previous month
			pending,
		}

		total := RealizedTotal(sales, day(2025, time.March, 1), day(2025, time.March, 31))
		if !total.Equal(dec("300.75")) {
			t.Errorf("expected 300.75, got %s", total)
		}
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		sales := []*Sale{
			approved("10", "2025-03-01"),
			approved("20", "2025-03-31"),
		}
		total := RealizedTotal(sales, day(2025, time.March, 1), day(2025, time.March, 31))
		if !total.Equal(dec("30")) {
			t.Errorf("expected 30, got %s", total)
		}
	})

	t.Run("empty ledger yields zero", func(t *testing.T) {
		total := RealizedTotal(nil, day(2025, time.March, 1), day(2025, time.March, 31))
		if !total.IsZero() {
			t.Errorf("expected 0, got %s", total)
		}
	})
}

func TestRealizedTotalsBySeller(t *testing.T) {
	sellerA := uuid.New()
	sellerB := uuid.New()
	companyID := uuid.New()

	mk := func(seller uuid.UUID, amount string, status SaleStatus) *Sale {
		s := NewSale(seller, companyID, dec(amount), "", day(2025, time.March, 10))
		s.Status = status
		return s
	}

	sales := []*Sale{
		mk(sellerA, "100", SaleStatusApproved),
		mk(sellerA, "50", SaleStatusApproved),
		mk(sellerA, "25", SaleStatusRefunded),
		mk(sellerB, "75", SaleStatusPending),
	}

	totals := RealizedTotalsBySeller(sales, day(2025, time.March, 1), day(2025, time.March, 31))

	if !totals[sellerA].Equal(dec("150")) {
		t.Errorf("expected 150 for seller A, got %s", totals[sellerA])
	}
	if _, ok := totals[sellerB]; ok {
		t.Error("seller with no approved sales must be absent from the map")
	}
}

func TestValidSaleStatus(t *testing.T) {
	for _, valid := range []SaleStatus{SaleStatusApproved, SaleStatusPending, SaleStatusRefunded} {
		if !ValidSaleStatus(valid) {
			t.Errorf("expected %s to be valid", valid)
		}
	}
	if ValidSaleStatus("cancelled") {
		t.Error("expected unknown status to be invalid")
	}
}
