package controllers

import (
	"net/http"
	"strings"

	"github.com/floordesk/floordesk-backend/api/responses"
	"github.com/floordesk/floordesk-backend/internal/ledger"
	"github.com/floordesk/floordesk-backend/internal/orders"
	"github.com/floordesk/floordesk-backend/internal/reports"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/floordesk/floordesk-backend/pkg/logger"
)

type discountRow struct {
	OrderID         int64  `json:"order_id"`
	InvoiceNumber   string `json:"invoice_number"`
	OrderDate       string `json:"order_date"`
	ClientName      string `json:"client_name"`
	Subtotal        string `json:"subtotal"`
	Total           string `json:"total"`
	Discount        string `json:"discount"`
	DiscountPercent string `json:"discount_percent"`
}

// ReportsDiscounts lists orders whose effective discount is material.
func ReportsDiscounts(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, err := parseDateRange(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		snapshots, err := loadSnapshots(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		source := reports.DiscountRows(snapshots, from, to)
		rows := make([]discountRow, 0, len(source))
		for _, d := range source {
			rows = append(rows, discountRow{
				OrderID:         d.OrderID,
				InvoiceNumber:   d.InvoiceNumber,
				OrderDate:       d.OrderDate.Format("2006-01-02"),
				ClientName:      d.ClientName,
				Subtotal:        d.Subtotal.StringFixed(2),
				Total:           d.Total.StringFixed(2),
				Discount:        d.Discount.StringFixed(2),
				DiscountPercent: d.DiscountPercent.StringFixed(2),
			})
		}
		totals := reports.DiscountReportTotals(source)
		responses.WriteSuccess(w, map[string]any{
			"discounts": rows,
			"totals": map[string]string{
				"subtotal":    totals.Subtotal.StringFixed(2),
				"total":       totals.Total.StringFixed(2),
				"discount":    totals.Discount.StringFixed(2),
				"avg_percent": totals.AvgPercent.StringFixed(2),
			},
		})
	}
}

type revenueRow struct {
	Day     string `json:"day"`
	Clients int    `json:"clients"`
	Revenue string `json:"revenue"`
	Paid    string `json:"paid"`
	Debt    string `json:"debt"`
}

// ReportsRevenue returns the per-day revenue report across a date range.
// The day's debt is signed: overpayments offset debts booked the same day.
func ReportsRevenue(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, err := parseDateRange(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshots, err := loadSnapshots(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		source := reports.RevenueRows(snapshots, from, to)
		rows := make([]revenueRow, 0, len(source))
		for _, rr := range source {
			rows = append(rows, revenueRow{
				Day:     rr.Day.Format("2006-01-02"),
				Clients: rr.Clients,
				Revenue: rr.Revenue.StringFixed(2),
				Paid:    rr.Paid.StringFixed(2),
				Debt:    rr.Debt.StringFixed(2),
			})
		}
		totals := reports.RevenueReportTotals(source)
		responses.WriteSuccess(w, map[string]any{
			"revenue": rows,
			"totals": map[string]string{
				"revenue": totals.Revenue.StringFixed(2),
				"paid":    totals.Paid.StringFixed(2),
				"debt":    totals.Debt.StringFixed(2),
			},
		})
	}
}

type reconciliationRow struct {
	Date          string `json:"date"`
	InvoiceNumber string `json:"invoice_number"`
	Total         string `json:"total"`
	Paid          string `json:"paid"`
	Saldo         string `json:"saldo"`
}

// ReportsReconciliation builds a client's running-balance act over a range.
func ReportsReconciliation(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientName := strings.TrimSpace(r.URL.Query().Get("client_name"))
		if clientName == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "client_name is required"))
			return
		}
		clientPhone := strings.TrimSpace(r.URL.Query().Get("client_phone"))

		from, to, err := parseDateRange(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshots, err := loadSnapshots(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		source := ledger.Reconciliation(snapshots, clientName, clientPhone, from, to)
		rows := make([]reconciliationRow, 0, len(source))
		for _, rr := range source {
			rows = append(rows, reconciliationRow{
				Date:          rr.Date.Format("2006-01-02"),
				InvoiceNumber: rr.InvoiceNumber,
				Total:         rr.Total.StringFixed(2),
				Paid:          rr.Paid.StringFixed(2),
				Saldo:         rr.Saldo.StringFixed(2),
			})
		}
		responses.WriteSuccess(w, map[string]any{
			"client_name":  clientName,
			"client_phone": clientPhone,
			"rows":         rows,
		})
	}
}
