package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() Engine {
	return Engine{
		TaxRate:     decimal.RequireFromString("0.085"),
		DeliveryFee: decimal.RequireFromString("5.00"),
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarizeCartScenario(t *testing.T) {
	// 2 x 10.00 + 1 x 5.00 => 25.00; 25.00 * 0.085 = 2.125 -> 2.13 half-up.
	totals := testEngine().Summarize([]Line{
		{UnitPrice: d("10.00"), Quantity: 2},
		{UnitPrice: d("5.00"), Quantity: 1},
	})

	assert.True(t, totals.Subtotal.Equal(d("25.00")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(d("2.13")), "tax %s", totals.Tax)
	assert.True(t, totals.DeliveryFee.Equal(d("5.00")), "fee %s", totals.DeliveryFee)
	assert.True(t, totals.GrandTotal.Equal(d("32.13")), "grand total %s", totals.GrandTotal)
}

func TestSummarizeDeterministic(t *testing.T) {
	lines := []Line{
		{UnitPrice: d("1.005"), Quantity: 3},
		{UnitPrice: d("19.99"), Quantity: 7},
		{UnitPrice: d("0.33"), Quantity: 11},
	}

	first := testEngine().Summarize(lines)
	for i := 0; i < 100; i++ {
		again := testEngine().Summarize(lines)
		require.True(t, first.GrandTotal.Equal(again.GrandTotal))
		require.True(t, first.Subtotal.Equal(again.Subtotal))
		require.True(t, first.Tax.Equal(again.Tax))
	}
}

func TestLineSubtotalRoundsHalfUp(t *testing.T) {
	assert.True(t, LineSubtotal(d("1.005"), 1).Equal(d("1.01")))
}

func TestPerLineRoundingHappensBeforeSumming(t *testing.T) {
	// Each line rounds 1.004 -> 1.00 before summing, so the subtotal is
	// 2.00. Summing first would give 2.008 -> 2.01.
	totals := testEngine().Summarize([]Line{
		{UnitPrice: d("1.004"), Quantity: 1},
		{UnitPrice: d("1.004"), Quantity: 1},
	})
	assert.True(t, totals.Subtotal.Equal(d("2.00")), "subtotal %s", totals.Subtotal)
}

func TestSummarizeEmptyCartStillChargesDelivery(t *testing.T) {
	totals := testEngine().Summarize(nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.GrandTotal.Equal(d("5.00")))
}

func TestSummarizeHasNoSideEffects(t *testing.T) {
	lines := []Line{{UnitPrice: d("2.50"), Quantity: 4}}
	_ = testEngine().Summarize(lines)
	assert.True(t, lines[0].UnitPrice.Equal(d("2.50")))
	assert.Equal(t, 4, lines[0].Quantity)
}
