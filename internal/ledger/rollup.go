package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Debtors returns the orders that belong in the debtors ledger, preserving
// the input order.
func Debtors(orders []Order) []Order {
	var out []Order
	for _, o := range orders {
		if IsDebtor(o) {
			out = append(out, o)
		}
	}
	return out
}

// DebtSum totals the signed outstanding debt across all debtor orders.
// Preorders and deleted orders never contribute, regardless of any filter
// the caller applied beforehand.
func DebtSum(orders []Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.IsDeleted || o.IsPreorder() {
			continue
		}
		debt := OrderTotals(o).Debt
		if debt.GreaterThan(DebtEpsilon) {
			sum = sum.Add(debt)
		}
	}
	return sum
}

// Summary carries the cross-order rollup backing the dashboard and
// analytics KPI blocks.
type Summary struct {
	Revenue     decimal.Decimal
	Paid        decimal.Decimal
	Debt        decimal.Decimal
	AvgCheck    decimal.Decimal
	OrderCount  int
	DebtorCount int
}

// Summarize rolls up revenue, collected payments, and outstanding debt over
// the order set. The excludePreorders toggle applies to revenue, paid, and
// average-check figures only; the debt figure always excludes preorders and
// sums signed balances, so an overpaid order reduces the business total.
func Summarize(orders []Order, excludePreorders bool) Summary {
	s := Summary{
		Revenue:  decimal.Zero,
		Paid:     decimal.Zero,
		Debt:     decimal.Zero,
		AvgCheck: decimal.Zero,
	}
	for _, o := range orders {
		if o.IsDeleted {
			continue
		}
		totals := OrderTotals(o)
		if !excludePreorders || !o.IsPreorder() {
			s.Revenue = s.Revenue.Add(totals.Total)
			s.Paid = s.Paid.Add(o.Prepayment)
			s.OrderCount++
		}
		if !o.IsPreorder() {
			s.Debt = s.Debt.Add(totals.Debt)
		}
		if IsDebtor(o) {
			s.DebtorCount++
		}
	}
	if s.OrderCount > 0 {
		s.AvgCheck = s.Revenue.Div(decimal.NewFromInt(int64(s.OrderCount))).Round(2)
	}
	return s
}

// DayBucket is one day of the dashboard time series.
type DayBucket struct {
	Date          time.Time
	Revenue       decimal.Decimal
	Paid          decimal.Decimal
	Debt          decimal.Decimal
	UniqueClients int
}

// DailySeries buckets orders by calendar day across [from, to] inclusive.
// Revenue and paid sums respect the preorder toggle; the per-day debt sums
// signed balances of non-preorder orders and floors the aggregate at zero,
// not each order.
func DailySeries(orders []Order, from, to time.Time, excludePreorders bool) []DayBucket {
	from = truncateDay(from)
	to = truncateDay(to)
	if to.Before(from) {
		return nil
	}

	type accum struct {
		revenue decimal.Decimal
		paid    decimal.Decimal
		debt    decimal.Decimal
		clients map[string]struct{}
	}
	days := map[time.Time]*accum{}

	for _, o := range orders {
		if o.IsDeleted {
			continue
		}
		day := truncateDay(o.OrderDate)
		if day.Before(from) || day.After(to) {
			continue
		}
		acc := days[day]
		if acc == nil {
			acc = &accum{
				revenue: decimal.Zero,
				paid:    decimal.Zero,
				debt:    decimal.Zero,
				clients: map[string]struct{}{},
			}
			days[day] = acc
		}
		totals := OrderTotals(o)
		if !excludePreorders || !o.IsPreorder() {
			acc.revenue = acc.revenue.Add(totals.Total)
			acc.paid = acc.paid.Add(o.Prepayment)
			acc.clients[o.ClientName+"|"+o.ClientPhone] = struct{}{}
		}
		if !o.IsPreorder() {
			acc.debt = acc.debt.Add(totals.Debt)
		}
	}

	var out []DayBucket
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		bucket := DayBucket{
			Date:    day,
			Revenue: decimal.Zero,
			Paid:    decimal.Zero,
			Debt:    decimal.Zero,
		}
		if acc, ok := days[day]; ok {
			bucket.Revenue = acc.revenue
			bucket.Paid = acc.paid
			if acc.debt.IsPositive() {
				bucket.Debt = acc.debt
			}
			bucket.UniqueClients = len(acc.clients)
		}
		out = append(out, bucket)
	}
	return out
}

// ReconciliationRow is one line of a client reconciliation act.
type ReconciliationRow struct {
	Date          time.Time
	InvoiceNumber string
	Total         decimal.Decimal
	Paid          decimal.Decimal
	Saldo         decimal.Decimal
}

// Reconciliation builds the running-balance rows for one client over a date
// range. Orders match on exact client name; the phone narrows the match only
// when non-empty. Saldo accumulates total minus paid across rows in date
// order and is never reset by the range filter.
func Reconciliation(orders []Order, clientName, clientPhone string, from, to time.Time) []ReconciliationRow {
	from = truncateDay(from)
	to = truncateDay(to)

	var matched []Order
	for _, o := range orders {
		if o.IsDeleted {
			continue
		}
		if o.ClientName != clientName {
			continue
		}
		if clientPhone != "" && o.ClientPhone != clientPhone {
			continue
		}
		day := truncateDay(o.OrderDate)
		if day.Before(from) || day.After(to) {
			continue
		}
		matched = append(matched, o)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].OrderDate.Equal(matched[j].OrderDate) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].OrderDate.Before(matched[j].OrderDate)
	})

	saldo := decimal.Zero
	rows := make([]ReconciliationRow, 0, len(matched))
	for _, o := range matched {
		totals := OrderTotals(o)
		saldo = saldo.Add(totals.Total.Sub(o.Prepayment))
		rows = append(rows, ReconciliationRow{
			Date:          o.OrderDate,
			InvoiceNumber: o.InvoiceNumber,
			Total:         totals.Total,
			Paid:          o.Prepayment,
			Saldo:         saldo,
		})
	}
	return rows
}

// UrgentShipments returns open orders whose shipping date has arrived:
// shipping date set, not completed, and due today or earlier. The selection
// is independent of preorder and debt status.
func UrgentShipments(orders []Order, today time.Time) []Order {
	today = truncateDay(today)
	var out []Order
	for _, o := range orders {
		if o.IsDeleted || o.IsCompleted || o.ShippingDate == nil {
			continue
		}
		if !truncateDay(*o.ShippingDate).After(today) {
			out = append(out, o)
		}
	}
	return out
}

// MonthCash totals the collected prepayments for orders placed in the month
// containing now.
func MonthCash(orders []Order, now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.IsDeleted {
			continue
		}
		if o.OrderDate.Year() == now.Year() && o.OrderDate.Month() == now.Month() {
			sum = sum.Add(o.Prepayment)
		}
	}
	return sum
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
