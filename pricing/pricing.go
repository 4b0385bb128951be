package pricing

import "github.com/shopspring/decimal"

// Engine computes checkout totals. Every intermediate amount is rounded
// to two decimal places as it is produced (per line, then tax, then the
// grand total), so totals reproduce exactly on recomputation.
type Engine struct {
	TaxRate     decimal.Decimal
	DeliveryFee decimal.Decimal
}

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Totals struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	GrandTotal  decimal.Decimal
}

// LineSubtotal is round2(unitPrice * quantity). Rounding happens here,
// before summing, not on the summed total.
func LineSubtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// Summarize prices an ordered set of line items.
func (e Engine) Summarize(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(LineSubtotal(l.UnitPrice, l.Quantity))
	}
	return e.FromSubtotal(subtotal.Round(2))
}

// FromSubtotal applies tax and the flat delivery fee to an
// already-summed subtotal. The fee applies once per order group.
func (e Engine) FromSubtotal(subtotal decimal.Decimal) Totals {
	tax := subtotal.Mul(e.TaxRate).Round(2)
	grand := subtotal.Add(tax).Add(e.DeliveryFee).Round(2)
	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: e.DeliveryFee,
		GrandTotal:  grand,
	}
}
