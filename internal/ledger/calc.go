package ledger

import "github.com/shopspring/decimal"

// LineTotal computes one line's effective total from quantity, unit price,
// and a percentage discount, rounded to two decimal places. Discounts are
// clamped to [0, 100] so a bad input can never invert the sign of a line.
func LineTotal(quantity, price, discountPercent decimal.Decimal) decimal.Decimal {
	discountPercent = clampPercent(discountPercent)
	factor := decimal.NewFromInt(1).Sub(discountPercent.Div(oneHundred))
	return quantity.Mul(price).Mul(factor).Round(2)
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(oneHundred) {
		return oneHundred
	}
	return p
}

// Totals carries the aggregate figures for a single order.
type Totals struct {
	// Subtotal is the pre-discount sum of quantity times unit price.
	Subtotal decimal.Decimal
	// Total is the post-discount sum of stored line totals.
	Total decimal.Decimal
	// Discount is Subtotal minus Total.
	Discount decimal.Decimal
	// Debt is Total minus prepayment, signed. A prepayment above the total
	// yields a negative debt (credit balance).
	Debt decimal.Decimal
}

// Remaining is the debt floored at zero, which is how an outstanding
// balance is shown to the user.
func (t Totals) Remaining() decimal.Decimal {
	if t.Debt.IsNegative() {
		return decimal.Zero
	}
	return t.Debt
}

// OrderTotals aggregates an order's lines into subtotal, total, discount
// amount, and signed outstanding debt. An order with no items yields zero
// subtotal and total with debt equal to the negated prepayment.
func OrderTotals(o Order) Totals {
	subtotal := decimal.Zero
	total := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Quantity.Mul(item.Price))
		total = total.Add(item.Total)
	}
	subtotal = subtotal.Round(2)
	total = total.Round(2)
	return Totals{
		Subtotal: subtotal,
		Total:    total,
		Discount: subtotal.Sub(total),
		Debt:     total.Sub(o.Prepayment),
	}
}

// IsDebtor reports whether the order belongs in the debtors ledger: not
// deleted, not a preorder, and carrying a balance above the debt epsilon.
func IsDebtor(o Order) bool {
	if o.IsDeleted || o.IsPreorder() {
		return false
	}
	return OrderTotals(o).Debt.GreaterThan(DebtEpsilon)
}
