// Package reports builds the derived read-models behind the analytics and
// printable report screens. Everything here is a pure reduction over ledger
// snapshots.
package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/floordesk/floordesk-backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// DefaultTopN is the ranking depth for product and client leaderboards.
const DefaultTopN = 5

// ProductRank is one row of the top-products leaderboard.
type ProductRank struct {
	PositionName string
	Quantity     decimal.Decimal
	Revenue      decimal.Decimal
}

// TopProducts ranks positions by revenue across the order set, keeping the
// top n rows. Lines group by the denormalized position name so historical
// labels survive catalog edits.
func TopProducts(orders []ledger.Order, n int) []ProductRank {
	if n <= 0 {
		n = DefaultTopN
	}

	type accum struct {
		quantity decimal.Decimal
		revenue  decimal.Decimal
	}
	byName := map[string]*accum{}
	for _, o := range orders {
		if o.IsDeleted {
			continue
		}
		for _, it := range o.Items {
			acc := byName[it.PositionName]
			if acc == nil {
				acc = &accum{quantity: decimal.Zero, revenue: decimal.Zero}
				byName[it.PositionName] = acc
			}
			acc.quantity = acc.quantity.Add(it.Quantity)
			acc.revenue = acc.revenue.Add(it.Total)
		}
	}

	rows := make([]ProductRank, 0, len(byName))
	for name, acc := range byName {
		rows = append(rows, ProductRank{PositionName: name, Quantity: acc.quantity, Revenue: acc.revenue})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Revenue.Equal(rows[j].Revenue) {
			return rows[i].Revenue.GreaterThan(rows[j].Revenue)
		}
		return rows[i].PositionName < rows[j].PositionName
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// ClientRank is one row of the top-clients leaderboard.
type ClientRank struct {
	ClientName string
	OrderCount int
	Revenue    decimal.Decimal
}

// TopClients ranks clients by total revenue across all their orders.
func TopClients(orders []ledger.Order, n int) []ClientRank {
	if n <= 0 {
		n = DefaultTopN
	}

	type accum struct {
		orders  int
		revenue decimal.Decimal
	}
	byClient := map[string]*accum{}
	for _, o := range orders {
		if o.IsDeleted {
			continue
		}
		acc := byClient[o.ClientName]
		if acc == nil {
			acc = &accum{revenue: decimal.Zero}
			byClient[o.ClientName] = acc
		}
		acc.orders++
		acc.revenue = acc.revenue.Add(ledger.OrderTotals(o).Total)
	}

	rows := make([]ClientRank, 0, len(byClient))
	for name, acc := range byClient {
		rows = append(rows, ClientRank{ClientName: name, OrderCount: acc.orders, Revenue: acc.revenue})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Revenue.Equal(rows[j].Revenue) {
			return rows[i].Revenue.GreaterThan(rows[j].Revenue)
		}
		return rows[i].ClientName < rows[j].ClientName
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// CategoryShare is one category's slice of total revenue.
type CategoryShare struct {
	CategoryName string
	Revenue      decimal.Decimal
	SharePercent decimal.Decimal
}

// CategoryShares groups line revenue by the denormalized category name and
// computes each group's percentage of the grand total. With a zero grand
// total every share is zero, never a division error.
func CategoryShares(orders []ledger.Order) []CategoryShare {
	byCategory := map[string]decimal.Decimal{}
	grand := decimal.Zero
	for _, o := range orders {
		if o.IsDeleted {
			continue
		}
		for _, it := range o.Items {
			byCategory[it.CategoryName] = byCategory[it.CategoryName].Add(it.Total)
			grand = grand.Add(it.Total)
		}
	}

	rows := make([]CategoryShare, 0, len(byCategory))
	for name, revenue := range byCategory {
		share := decimal.Zero
		if !grand.IsZero() {
			share = revenue.Div(grand).Mul(decimal.NewFromInt(100)).Round(2)
		}
		rows = append(rows, CategoryShare{CategoryName: name, Revenue: revenue, SharePercent: share})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Revenue.Equal(rows[j].Revenue) {
			return rows[i].Revenue.GreaterThan(rows[j].Revenue)
		}
		return rows[i].CategoryName < rows[j].CategoryName
	})
	return rows
}

// DiscountRow is one order of the discount report.
type DiscountRow struct {
	OrderID         int64
	InvoiceNumber   string
	OrderDate       time.Time
	ClientName      string
	Subtotal        decimal.Decimal
	Total           decimal.Decimal
	Discount        decimal.Decimal
	DiscountPercent decimal.Decimal
}

// DiscountRows selects the orders inside the date range whose discount
// exceeds the discount epsilon and computes each order's effective discount
// percentage. Range bounds compare at day granularity.
func DiscountRows(orders []ledger.Order, from, to time.Time) []DiscountRow {
	from = dayStart(from)
	to = dayStart(to)

	var rows []DiscountRow
	for _, o := range orders {
		if o.IsDeleted {
			continue
		}
		d := dayStart(o.OrderDate)
		if d.Before(from) || d.After(to) {
			continue
		}
		totals := ledger.OrderTotals(o)
		if !totals.Discount.GreaterThan(ledger.DiscountEpsilon) {
			continue
		}
		pct := decimal.Zero
		if !totals.Subtotal.IsZero() {
			pct = totals.Discount.Div(totals.Subtotal).Mul(decimal.NewFromInt(100)).Round(2)
		}
		rows = append(rows, DiscountRow{
			OrderID:         o.ID,
			InvoiceNumber:   o.InvoiceNumber,
			OrderDate:       o.OrderDate,
			ClientName:      o.ClientName,
			Subtotal:        totals.Subtotal,
			Total:           totals.Total,
			Discount:        totals.Discount,
			DiscountPercent: pct,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OrderDate.Equal(rows[j].OrderDate) {
			return rows[i].OrderID < rows[j].OrderID
		}
		return rows[i].OrderDate.Before(rows[j].OrderDate)
	})
	return rows
}

// DiscountTotals is the grand-total line of the discount report.
type DiscountTotals struct {
	Subtotal   decimal.Decimal
	Total      decimal.Decimal
	Discount   decimal.Decimal
	AvgPercent decimal.Decimal
}

// DiscountReportTotals sums the report rows and derives the average
// discount percentage over the whole selection.
func DiscountReportTotals(rows []DiscountRow) DiscountTotals {
	t := DiscountTotals{
		Subtotal:   decimal.Zero,
		Total:      decimal.Zero,
		Discount:   decimal.Zero,
		AvgPercent: decimal.Zero,
	}
	for _, r := range rows {
		t.Subtotal = t.Subtotal.Add(r.Subtotal)
		t.Total = t.Total.Add(r.Total)
		t.Discount = t.Discount.Add(r.Discount)
	}
	if !t.Subtotal.IsZero() {
		t.AvgPercent = t.Discount.Div(t.Subtotal).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return t
}

// RevenueRow is one day of the revenue report.
type RevenueRow struct {
	Day     time.Time
	Clients int
	Revenue decimal.Decimal
	Paid    decimal.Decimal
	Debt    decimal.Decimal
}

// RevenueRows buckets live orders by calendar day across the date range.
// The day's debt is the signed sum, so an overpaid order offsets debts
// booked the same day. Clients counts distinct name|phone pairs; rows with
// a blank client name do not count.
func RevenueRows(orders []ledger.Order, from, to time.Time) []RevenueRow {
	from = dayStart(from)
	to = dayStart(to)

	type accum struct {
		revenue decimal.Decimal
		paid    decimal.Decimal
		debt    decimal.Decimal
		clients map[string]struct{}
	}
	byDay := map[time.Time]*accum{}
	for _, o := range orders {
		if o.IsDeleted {
			continue
		}
		d := dayStart(o.OrderDate)
		if d.Before(from) || d.After(to) {
			continue
		}
		acc := byDay[d]
		if acc == nil {
			acc = &accum{
				revenue: decimal.Zero,
				paid:    decimal.Zero,
				debt:    decimal.Zero,
				clients: map[string]struct{}{},
			}
			byDay[d] = acc
		}
		totals := ledger.OrderTotals(o)
		acc.revenue = acc.revenue.Add(totals.Total)
		acc.paid = acc.paid.Add(o.Prepayment)
		acc.debt = acc.debt.Add(totals.Debt)
		if name := strings.TrimSpace(o.ClientName); name != "" {
			acc.clients[name+"|"+strings.TrimSpace(o.ClientPhone)] = struct{}{}
		}
	}

	rows := make([]RevenueRow, 0, len(byDay))
	for d, acc := range byDay {
		rows = append(rows, RevenueRow{
			Day:     d,
			Clients: len(acc.clients),
			Revenue: acc.revenue,
			Paid:    acc.paid,
			Debt:    acc.debt,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Day.Before(rows[j].Day) })
	return rows
}

// RevenueTotals is the grand-total line of the revenue report.
type RevenueTotals struct {
	Revenue decimal.Decimal
	Paid    decimal.Decimal
	Debt    decimal.Decimal
}

// RevenueReportTotals sums the report's day rows.
func RevenueReportTotals(rows []RevenueRow) RevenueTotals {
	t := RevenueTotals{Revenue: decimal.Zero, Paid: decimal.Zero, Debt: decimal.Zero}
	for _, r := range rows {
		t.Revenue = t.Revenue.Add(r.Revenue)
		t.Paid = t.Paid.Add(r.Paid)
		t.Debt = t.Debt.Add(r.Debt)
	}
	return t
}

// StatusCount is one cargo status with its order count.
type StatusCount struct {
	CargoStatusID int64
	Count         int
}

// StatusDistribution counts live orders per cargo status.
func StatusDistribution(orders []ledger.Order) []StatusCount {
	counts := map[int64]int{}
	for _, o := range orders {
		if o.IsDeleted {
			continue
		}
		counts[o.CargoStatusID]++
	}
	rows := make([]StatusCount, 0, len(counts))
	for id, count := range counts {
		rows = append(rows, StatusCount{CargoStatusID: id, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CargoStatusID < rows[j].CargoStatusID })
	return rows
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
