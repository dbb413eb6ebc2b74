package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebtorsAndDebtSum(t *testing.T) {
	orders := []Order{
		{ID: 1, CargoStatusID: 5, Prepayment: dec("2000"), Items: []Item{item("10", "350", "0")}},
		{ID: 2, CargoStatusID: PreorderStatusID, Prepayment: dec("0"), Items: []Item{item("1", "5000", "0")}},
		{ID: 3, CargoStatusID: 8, Prepayment: dec("1800"), Items: []Item{item("5", "400", "10")}},
		{ID: 4, CargoStatusID: 5, IsDeleted: true, Prepayment: dec("0"), Items: []Item{item("1", "700", "0")}},
	}

	debtors := Debtors(orders)
	require.Len(t, debtors, 1)
	assert.Equal(t, int64(1), debtors[0].ID)

	assert.True(t, DebtSum(orders).Equal(dec("1500")))
}

func TestSummarizePreorderToggleNeverChangesDebt(t *testing.T) {
	orders := []Order{
		{ID: 1, CargoStatusID: 5, Prepayment: dec("2000"), Items: []Item{item("10", "350", "0")}},
		{ID: 2, CargoStatusID: PreorderStatusID, Prepayment: dec("0"), Items: []Item{item("1", "5000", "0")}},
	}

	with := Summarize(orders, false)
	without := Summarize(orders, true)

	assert.True(t, with.Revenue.Equal(dec("8500")))
	assert.True(t, without.Revenue.Equal(dec("3500")))
	assert.Equal(t, 2, with.OrderCount)
	assert.Equal(t, 1, without.OrderCount)

	// The preorder carries total=5000, prepayment=0, yet neither summary
	// counts it toward outstanding debt.
	assert.True(t, with.Debt.Equal(dec("1500")))
	assert.True(t, without.Debt.Equal(with.Debt))
	assert.Equal(t, 1, with.DebtorCount)
}

func TestSummarizeSumsSignedDebt(t *testing.T) {
	orders := []Order{
		// overpaid by 200: signed contribution -200
		{ID: 1, CargoStatusID: 5, Prepayment: dec("500"), Items: []Item{item("1", "300", "0")}},
		// owing 500
		{ID: 2, CargoStatusID: 6, Prepayment: dec("1000"), Items: []Item{item("1", "1500", "0")}},
	}

	s := Summarize(orders, false)
	assert.True(t, s.Debt.Equal(dec("300")), "overpayments reduce the business debt total")
	assert.Equal(t, 1, s.DebtorCount, "credit balances are not debtors")
}

func TestSummarizeAvgCheck(t *testing.T) {
	orders := []Order{
		{ID: 1, CargoStatusID: 5, Prepayment: dec("0"), Items: []Item{item("1", "300", "0")}},
		{ID: 2, CargoStatusID: 6, Prepayment: dec("0"), Items: []Item{item("1", "1500", "0")}},
	}

	s := Summarize(orders, false)
	assert.True(t, s.AvgCheck.Equal(dec("900")))

	empty := Summarize(nil, false)
	assert.True(t, empty.AvgCheck.IsZero(), "no orders, no division")
}

func TestSummarizeSkipsDeleted(t *testing.T) {
	orders := []Order{
		{ID: 1, CargoStatusID: 5, IsDeleted: true, Prepayment: dec("0"), Items: []Item{item("1", "900", "0")}},
	}
	s := Summarize(orders, false)
	assert.True(t, s.Revenue.IsZero())
	assert.True(t, s.Debt.IsZero())
	assert.Equal(t, 0, s.OrderCount)
}

func TestDailySeriesFloorsAggregateNotPerOrder(t *testing.T) {
	d := day(2026, time.March, 10)
	orders := []Order{
		// debt contribution +300
		{ID: 1, OrderDate: d, CargoStatusID: 5, ClientName: "Aliya", ClientPhone: "111",
			Prepayment: dec("700"), Items: []Item{item("1", "1000", "0")}},
		// credit balance, still non-preorder: contributes -100 before flooring
		{ID: 2, OrderDate: d, CargoStatusID: 6, ClientName: "Bek", ClientPhone: "222",
			Prepayment: dec("300"), Items: []Item{item("1", "200", "0")}},
	}

	series := DailySeries(orders, d, d, false)
	require.Len(t, series, 1)
	assert.True(t, series[0].Debt.Equal(dec("200")), "sum first, floor the aggregate")
	assert.True(t, series[0].Revenue.Equal(dec("1200")))
	assert.Equal(t, 2, series[0].UniqueClients)
}

func TestDailySeriesPreorderDebtExcluded(t *testing.T) {
	d := day(2026, time.March, 11)
	orders := []Order{
		{ID: 1, OrderDate: d, CargoStatusID: 5, ClientName: "Aliya", ClientPhone: "111",
			Prepayment: dec("700"), Items: []Item{item("1", "1000", "0")}},
		{ID: 2, OrderDate: d, CargoStatusID: PreorderStatusID, ClientName: "Bek", ClientPhone: "222",
			Prepayment: dec("100"), Items: []Item{item("1", "-200", "0")}},
	}

	series := DailySeries(orders, d, d, false)
	require.Len(t, series, 1)
	assert.True(t, series[0].Debt.Equal(dec("300")), "preorder never reduces the day's debt")
}

func TestDailySeriesFillsEmptyDays(t *testing.T) {
	from := day(2026, time.March, 1)
	to := day(2026, time.March, 3)
	orders := []Order{
		{ID: 1, OrderDate: day(2026, time.March, 2), CargoStatusID: 5, ClientName: "Aliya",
			Prepayment: dec("0"), Items: []Item{item("1", "100", "0")}},
	}

	series := DailySeries(orders, from, to, false)
	require.Len(t, series, 3)
	assert.True(t, series[0].Revenue.IsZero())
	assert.True(t, series[1].Revenue.Equal(dec("100")))
	assert.True(t, series[2].Revenue.IsZero())
	assert.Equal(t, 0, series[0].UniqueClients)
}

func TestDailySeriesUniqueClientsKeyedByNameAndPhone(t *testing.T) {
	d := day(2026, time.April, 1)
	orders := []Order{
		{ID: 1, OrderDate: d, CargoStatusID: 5, ClientName: "Aliya", ClientPhone: "111", Prepayment: dec("0")},
		{ID: 2, OrderDate: d, CargoStatusID: 5, ClientName: "Aliya", ClientPhone: "111", Prepayment: dec("0")},
		{ID: 3, OrderDate: d, CargoStatusID: 5, ClientName: "Aliya", ClientPhone: "333", Prepayment: dec("0")},
	}

	series := DailySeries(orders, d, d, false)
	require.Len(t, series, 1)
	assert.Equal(t, 2, series[0].UniqueClients)
}

func TestReconciliationRunningBalance(t *testing.T) {
	orders := []Order{
		{ID: 2, OrderDate: day(2026, time.May, 3), ClientName: "Aliya", ClientPhone: "111",
			InvoiceNumber: "№ 0002", Prepayment: dec("500"), Items: []Item{item("1", "1500", "0")}},
		{ID: 1, OrderDate: day(2026, time.May, 1), ClientName: "Aliya", ClientPhone: "111",
			InvoiceNumber: "№ 0001", Prepayment: dec("1000"), Items: []Item{item("1", "1000", "0")}},
		{ID: 3, OrderDate: day(2026, time.May, 2), ClientName: "Bek", ClientPhone: "222",
			Prepayment: dec("0"), Items: []Item{item("1", "999", "0")}},
	}

	rows := Reconciliation(orders, "Aliya", "111", day(2026, time.May, 1), day(2026, time.May, 31))
	require.Len(t, rows, 2)

	assert.Equal(t, "№ 0001", rows[0].InvoiceNumber)
	assert.True(t, rows[0].Saldo.IsZero())
	assert.Equal(t, "№ 0002", rows[1].InvoiceNumber)
	assert.True(t, rows[1].Saldo.Equal(dec("1000")))

	// prefix-summable: saldo[i] == saldo[i-1] + (total[i] - paid[i])
	assert.True(t, rows[1].Saldo.Equal(rows[0].Saldo.Add(rows[1].Total.Sub(rows[1].Paid))))
}

func TestReconciliationPhoneFilterOnlyWhenSet(t *testing.T) {
	orders := []Order{
		{ID: 1, OrderDate: day(2026, time.May, 1), ClientName: "Aliya", ClientPhone: "111",
			Prepayment: dec("0"), Items: []Item{item("1", "100", "0")}},
		{ID: 2, OrderDate: day(2026, time.May, 2), ClientName: "Aliya", ClientPhone: "333",
			Prepayment: dec("0"), Items: []Item{item("1", "200", "0")}},
	}

	all := Reconciliation(orders, "Aliya", "", day(2026, time.May, 1), day(2026, time.May, 31))
	assert.Len(t, all, 2)

	one := Reconciliation(orders, "Aliya", "333", day(2026, time.May, 1), day(2026, time.May, 31))
	require.Len(t, one, 1)
	assert.True(t, one[0].Total.Equal(dec("200")))
}

func TestUrgentShipments(t *testing.T) {
	today := day(2026, time.June, 15)
	yesterday := day(2026, time.June, 14)
	tomorrow := day(2026, time.June, 16)

	orders := []Order{
		{ID: 1, ShippingDate: &yesterday},
		{ID: 2, ShippingDate: &today},
		{ID: 3, ShippingDate: &tomorrow},
		{ID: 4, ShippingDate: &today, IsCompleted: true},
		{ID: 5},
		{ID: 6, ShippingDate: &yesterday, IsDeleted: true},
	}

	urgent := UrgentShipments(orders, today)
	require.Len(t, urgent, 2)
	assert.Equal(t, int64(1), urgent[0].ID)
	assert.Equal(t, int64(2), urgent[1].ID, "same-day shipments count as urgent")
}

func TestMonthCash(t *testing.T) {
	now := time.Date(2026, time.July, 20, 12, 0, 0, 0, time.UTC)
	orders := []Order{
		{ID: 1, OrderDate: day(2026, time.July, 1), Prepayment: dec("1000")},
		{ID: 2, OrderDate: day(2026, time.July, 31), Prepayment: dec("250.50")},
		{ID: 3, OrderDate: day(2026, time.June, 30), Prepayment: dec("999")},
		{ID: 4, OrderDate: day(2026, time.July, 5), Prepayment: dec("100"), IsDeleted: true},
	}
	assert.True(t, MonthCash(orders, now).Equal(dec("1250.50")))
}
