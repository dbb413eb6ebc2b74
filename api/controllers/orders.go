package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/floordesk/floordesk-backend/api/responses"
	"github.com/floordesk/floordesk-backend/api/validators"
	"github.com/floordesk/floordesk-backend/internal/ledger"
	"github.com/floordesk/floordesk-backend/internal/orders"
	"github.com/floordesk/floordesk-backend/pkg/logger"
	"github.com/floordesk/floordesk-backend/pkg/pagination"
)

func buildOrderFilters(r *http.Request) (orders.Filters, error) {
	var filters orders.Filters

	statusID, err := validators.ParseQueryID(r, "cargo_status_id")
	if err != nil {
		return filters, err
	}
	from, err := validators.ParseQueryDate(r, "date_from")
	if err != nil {
		return filters, err
	}
	to, err := validators.ParseQueryDate(r, "date_to")
	if err != nil {
		return filters, err
	}
	includeDeleted, err := validators.ParseQueryBool(r, "include_deleted", false)
	if err != nil {
		return filters, err
	}

	filters.CargoStatusID = statusID
	filters.DateFrom = from
	filters.DateTo = to
	filters.Query = strings.TrimSpace(r.URL.Query().Get("q"))
	filters.IncludeDeleted = includeDeleted
	return filters, nil
}

func OrdersList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters, err := buildOrderFilters(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.List(r.Context(), pagination.Params{Page: page, Limit: limit}, filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func OrdersGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func OrdersCreate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body orders.CreateOrderInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func OrdersUpdate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body orders.UpdateOrderInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.Update(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func OrdersDelete(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.SoftDelete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

// OrdersRestore undoes a soft delete.
func OrdersRestore(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		restored, err := svc.Restore(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, restored)
	}
}

// OrdersSettle records a payment against an order's outstanding balance.
func OrdersSettle(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body orders.SettleInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		settled, err := svc.SettlePayment(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, settled)
	}
}

type importOrdersBody struct {
	Orders []orders.ImportOrderInput `json:"orders" validate:"required,dive"`
}

// OrdersImport bulk-adds the uploaded orders, preserving order ids and
// invoice numbers. Orders already present are skipped.
func OrdersImport(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body importOrdersBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		count, err := svc.Import(r.Context(), body.Orders)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"imported": count})
	}
}

type debtorRow struct {
	ID            int64  `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	ClientName    string `json:"client_name"`
	ClientPhone   string `json:"client_phone"`
	OrderDate     string `json:"order_date"`
	Total         string `json:"total"`
	Prepayment    string `json:"prepayment"`
	Debt          string `json:"debt"`
}

// OrdersDebtors lists non-preorder orders carrying an outstanding balance.
func OrdersDebtors(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		debtors := ledger.Debtors(ledger.FromModels(all))
		rows := make([]debtorRow, 0, len(debtors))
		for _, o := range debtors {
			totals := ledger.OrderTotals(o)
			rows = append(rows, debtorRow{
				ID:            o.ID,
				InvoiceNumber: o.InvoiceNumber,
				ClientName:    o.ClientName,
				ClientPhone:   o.ClientPhone,
				OrderDate:     o.OrderDate.Format("2006-01-02"),
				Total:         totals.Total.StringFixed(2),
				Prepayment:    o.Prepayment.StringFixed(2),
				Debt:          totals.Remaining().StringFixed(2),
			})
		}

		responses.WriteSuccess(w, map[string]any{
			"debtors":  rows,
			"debt_sum": ledger.DebtSum(ledger.FromModels(all)).StringFixed(2),
		})
	}
}
