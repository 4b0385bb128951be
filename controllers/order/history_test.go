package orderControllers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshit9/WDM-ecom/models"
	"github.com/rakshit9/WDM-ecom/pricing"
	"github.com/rakshit9/WDM-ecom/testdb"
)

func historyEngine() pricing.Engine {
	return pricing.Engine{
		TaxRate:     decimal.RequireFromString("0.085"),
		DeliveryFee: decimal.RequireFromString("5.00"),
	}
}

func TestOrderHistoryGroupsByCalendarDay(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "history")
	apples := seedProduct(t, db, "Apples", "10.00", 50)
	milk := seedProduct(t, db, "Milk", "5.00", 50)

	// Two checkouts on the same day merge into one group.
	stageItem(t, db, user.UserID, apples.ProductID, 2)
	_, err := PlaceOrder(db, user.UserID)
	require.NoError(t, err)

	stageItem(t, db, user.UserID, milk.ProductID, 1)
	_, err = PlaceOrder(db, user.UserID)
	require.NoError(t, err)

	groups, err := OrderHistory(db, historyEngine(), user.UserID)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, 2, g.TotalOrders)
	assert.InDelta(t, 25.00, g.Subtotal, 0.001)
	assert.InDelta(t, 2.13, g.Tax, 0.001)
	assert.InDelta(t, 5.00, g.DeliveryFee, 0.001)
	assert.InDelta(t, 32.13, g.GrandTotal, 0.001)
}

func TestOrderHistorySeparatesDays(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "twodays")
	apples := seedProduct(t, db, "Apples", "10.00", 50)

	stageItem(t, db, user.UserID, apples.ProductID, 1)
	orders, err := PlaceOrder(db, user.UserID)
	require.NoError(t, err)

	// Backdate the first purchase by a day.
	yesterday := orders[0].OrderDate.AddDate(0, 0, -1)
	require.NoError(t, db.Model(&models.Order{}).
		Where("order_id = ?", orders[0].OrderID).
		Update("order_date", yesterday).Error)

	stageItem(t, db, user.UserID, apples.ProductID, 2)
	_, err = PlaceOrder(db, user.UserID)
	require.NoError(t, err)

	groups, err := OrderHistory(db, historyEngine(), user.UserID)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Newest first.
	assert.Equal(t, 1, groups[1].TotalOrders)
	assert.Equal(t, 1, groups[0].TotalOrders)
	assert.True(t, groups[0].OrderDate.After(groups[1].OrderDate))
}

func TestOrderHistoryUsesCurrentProductPrice(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "repriced")
	apples := seedProduct(t, db, "Apples", "10.00", 50)

	stageItem(t, db, user.UserID, apples.ProductID, 1)
	_, err := PlaceOrder(db, user.UserID)
	require.NoError(t, err)

	// A later price change shows up in history totals.
	require.NoError(t, db.Model(&models.Product{}).
		Where("product_id = ?", apples.ProductID).
		Update("price", decimal.RequireFromString("12.00")).Error)

	groups, err := OrderHistory(db, historyEngine(), user.UserID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.InDelta(t, 12.00, groups[0].Subtotal, 0.001)
	assert.InDelta(t, 12.00, groups[0].Orders[0].Subtotal, 0.001)
}

func TestOrderHistoryAttachesReviews(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "reviewer")
	apples := seedProduct(t, db, "Apples", "10.00", 50)
	milk := seedProduct(t, db, "Milk", "5.00", 50)

	stageItem(t, db, user.UserID, apples.ProductID, 1)
	stageItem(t, db, user.UserID, milk.ProductID, 1)
	orders, err := PlaceOrder(db, user.UserID)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	var applesOrder models.Order
	for _, o := range orders {
		if o.ProductID == apples.ProductID {
			applesOrder = o
		}
	}
	_, err = SubmitReview(db, user.UserID, ReviewInput{
		ProductID:  apples.ProductID,
		OrderID:    applesOrder.OrderID,
		Rating:     4,
		UserReview: "Crisp and fresh",
	})
	require.NoError(t, err)

	groups, err := OrderHistory(db, historyEngine(), user.UserID)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	var reviewed, unreviewed int
	for _, line := range groups[0].Orders {
		if line.Review != nil {
			reviewed++
			assert.Equal(t, "Crisp and fresh", *line.Review)
			require.NotNil(t, line.Rating)
			assert.Equal(t, 4, *line.Rating)
		} else {
			unreviewed++
			assert.Nil(t, line.Rating)
		}
	}
	assert.Equal(t, 1, reviewed)
	assert.Equal(t, 1, unreviewed)
}

func TestOrderHistoryEmpty(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "nothing")

	groups, err := OrderHistory(db, historyEngine(), user.UserID)
	require.NoError(t, err)
	assert.Empty(t, groups)
}
