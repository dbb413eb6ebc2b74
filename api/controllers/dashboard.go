package controllers

import (
	"net/http"
	"time"

	"github.com/floordesk/floordesk-backend/api/responses"
	"github.com/floordesk/floordesk-backend/api/validators"
	"github.com/floordesk/floordesk-backend/internal/ledger"
	"github.com/floordesk/floordesk-backend/internal/orders"
	"github.com/floordesk/floordesk-backend/pkg/logger"
)

type urgentShipmentRow struct {
	ID            int64  `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	ClientName    string `json:"client_name"`
	ClientPhone   string `json:"client_phone"`
	ShippingDate  string `json:"shipping_date"`
	CargoStatusID int64  `json:"cargo_status_id"`
}

// DashboardSummary returns the KPI block for the main screen: revenue, paid,
// outstanding debt, cash collected this month, plus shipments due.
func DashboardSummary(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		excludePreorders, err := validators.ParseQueryBool(r, "exclude_preorders", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		all, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshots := ledger.FromModels(all)
		now := time.Now()
		summary := ledger.Summarize(snapshots, excludePreorders)
		urgent := ledger.UrgentShipments(snapshots, now)

		// The toggle narrows the sales-side KPIs; debtors and urgent
		// shipments always run over the full set.
		filtered := snapshots
		if excludePreorders {
			filtered = make([]ledger.Order, 0, len(snapshots))
			for _, o := range snapshots {
				if !o.IsPreorder() {
					filtered = append(filtered, o)
				}
			}
		}

		todayCount := 0
		y, m, d := now.Date()
		for _, o := range filtered {
			oy, om, od := o.OrderDate.Date()
			if !o.IsDeleted && oy == y && om == m && od == d {
				todayCount++
			}
		}

		urgentRows := make([]urgentShipmentRow, 0, len(urgent))
		for _, o := range urgent {
			row := urgentShipmentRow{
				ID:            o.ID,
				InvoiceNumber: o.InvoiceNumber,
				ClientName:    o.ClientName,
				ClientPhone:   o.ClientPhone,
				CargoStatusID: o.CargoStatusID,
			}
			if o.ShippingDate != nil {
				row.ShippingDate = o.ShippingDate.Format("2006-01-02")
			}
			urgentRows = append(urgentRows, row)
		}

		responses.WriteSuccess(w, map[string]any{
			"revenue":          summary.Revenue.StringFixed(2),
			"paid":             summary.Paid.StringFixed(2),
			"debt":             summary.Debt.StringFixed(2),
			"order_count":      summary.OrderCount,
			"today_count":      todayCount,
			"debtor_count":     summary.DebtorCount,
			"debt_sum":         ledger.DebtSum(snapshots).StringFixed(2),
			"month_cash":       ledger.MonthCash(filtered, now).StringFixed(2),
			"urgent_count":     len(urgentRows),
			"urgent_shipments": urgentRows,
		})
	}
}
