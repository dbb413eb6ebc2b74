package controllers

import (
	"net/http"
	"time"

	"github.com/floordesk/floordesk-backend/api/responses"
	"github.com/floordesk/floordesk-backend/api/validators"
	"github.com/floordesk/floordesk-backend/internal/ledger"
	"github.com/floordesk/floordesk-backend/internal/orders"
	"github.com/floordesk/floordesk-backend/internal/reports"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/floordesk/floordesk-backend/pkg/logger"
)

func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	from, err := validators.ParseQueryDate(r, "date_from")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := validators.ParseQueryDate(r, "date_to")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	// Default window: the last 30 days.
	end := time.Now()
	start := end.AddDate(0, 0, -29)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "date_to precedes date_from")
	}
	return start, end, nil
}

func loadSnapshots(r *http.Request, svc orders.Service) ([]ledger.Order, error) {
	all, err := svc.ListAll(r.Context())
	if err != nil {
		return nil, err
	}
	return ledger.FromModels(all), nil
}

// AnalyticsSummary returns the financial KPI block: total sales, collected
// cash, signed business debt, and average check. Debt always excludes
// preorders; the toggle applies to the sales-side figures only.
func AnalyticsSummary(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		excludePreorders, err := validators.ParseQueryBool(r, "exclude_preorders", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshots, err := loadSnapshots(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary := ledger.Summarize(snapshots, excludePreorders)
		responses.WriteSuccess(w, map[string]any{
			"total_sales": summary.Revenue.StringFixed(2),
			"actual_cash": summary.Paid.StringFixed(2),
			"total_debt":  summary.Debt.StringFixed(2),
			"avg_check":   summary.AvgCheck.StringFixed(2),
			"order_count": summary.OrderCount,
		})
	}
}

type dayBucketRow struct {
	Date          string `json:"date"`
	Revenue       string `json:"revenue"`
	Paid          string `json:"paid"`
	Debt          string `json:"debt"`
	UniqueClients int    `json:"unique_clients"`
}

// AnalyticsDaily returns the per-day revenue series for the chart screens.
func AnalyticsDaily(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, err := parseDateRange(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		excludePreorders, err := validators.ParseQueryBool(r, "exclude_preorders", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshots, err := loadSnapshots(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		buckets := ledger.DailySeries(snapshots, from, to, excludePreorders)
		rows := make([]dayBucketRow, 0, len(buckets))
		for _, b := range buckets {
			rows = append(rows, dayBucketRow{
				Date:          b.Date.Format("2006-01-02"),
				Revenue:       b.Revenue.StringFixed(2),
				Paid:          b.Paid.StringFixed(2),
				Debt:          b.Debt.StringFixed(2),
				UniqueClients: b.UniqueClients,
			})
		}
		responses.WriteSuccess(w, map[string]any{"series": rows})
	}
}

type statusCountRow struct {
	CargoStatusID int64 `json:"cargo_status_id"`
	Count         int   `json:"count"`
}

// AnalyticsStatuses returns the live order count per cargo status.
func AnalyticsStatuses(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshots, err := loadSnapshots(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		counts := reports.StatusDistribution(snapshots)
		rows := make([]statusCountRow, 0, len(counts))
		for _, c := range counts {
			rows = append(rows, statusCountRow{CargoStatusID: c.CargoStatusID, Count: c.Count})
		}
		responses.WriteSuccess(w, map[string]any{"statuses": rows})
	}
}

type categoryShareRow struct {
	CategoryName string `json:"category_name"`
	Revenue      string `json:"revenue"`
	SharePercent string `json:"share_percent"`
}

// AnalyticsCategories returns revenue grouped by denormalized category label.
func AnalyticsCategories(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshots, err := loadSnapshots(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shares := reports.CategoryShares(snapshots)
		rows := make([]categoryShareRow, 0, len(shares))
		for _, s := range shares {
			rows = append(rows, categoryShareRow{
				CategoryName: s.CategoryName,
				Revenue:      s.Revenue.StringFixed(2),
				SharePercent: s.SharePercent.StringFixed(2),
			})
		}
		responses.WriteSuccess(w, map[string]any{"categories": rows})
	}
}

type productRankRow struct {
	PositionName string `json:"position_name"`
	Quantity     string `json:"quantity"`
	Revenue      string `json:"revenue"`
}

// AnalyticsTopProducts returns the revenue leaderboard by position label.
func AnalyticsTopProducts(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := validators.ParseQueryInt(r, "n", reports.DefaultTopN, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshots, err := loadSnapshots(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ranks := reports.TopProducts(snapshots, n)
		rows := make([]productRankRow, 0, len(ranks))
		for _, p := range ranks {
			rows = append(rows, productRankRow{
				PositionName: p.PositionName,
				Quantity:     p.Quantity.String(),
				Revenue:      p.Revenue.StringFixed(2),
			})
		}
		responses.WriteSuccess(w, map[string]any{"products": rows})
	}
}

type clientRankRow struct {
	ClientName string `json:"client_name"`
	OrderCount int    `json:"order_count"`
	Revenue    string `json:"revenue"`
}

// AnalyticsTopClients returns the revenue leaderboard by client name.
func AnalyticsTopClients(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := validators.ParseQueryInt(r, "n", reports.DefaultTopN, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshots, err := loadSnapshots(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ranks := reports.TopClients(snapshots, n)
		rows := make([]clientRankRow, 0, len(ranks))
		for _, c := range ranks {
			rows = append(rows, clientRankRow{
				ClientName: c.ClientName,
				OrderCount: c.OrderCount,
				Revenue:    c.Revenue.StringFixed(2),
			})
		}
		responses.WriteSuccess(w, map[string]any{"clients": rows})
	}
}
