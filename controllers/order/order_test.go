package orderControllers

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/models"
	"github.com/rakshit9/WDM-ecom/testdb"
)

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, title, price string, qty int) models.Product {
	t.Helper()
	product := models.Product{
		Title:        title,
		Description:  "test product",
		Brand:        "Acme",
		Type:         "Snacks",
		Price:        decimal.RequireFromString(price),
		AvailableQty: qty,
		Images:       models.ImageList{"/uploads/" + title + ".jpg"},
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func stageItem(t *testing.T, db *gorm.DB, userID, productID uint, qty int) {
	t.Helper()
	require.NoError(t, db.Create(&models.CheckoutItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	}).Error)
}

func availableQty(t *testing.T, db *gorm.DB, productID uint) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, productID).Error)
	return product.AvailableQty
}

func TestPlaceOrderCreatesOrdersAndDecrementsStock(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "buyer")
	apples := seedProduct(t, db, "Apples", "2.50", 10)
	milk := seedProduct(t, db, "Milk", "3.20", 4)
	stageItem(t, db, user.UserID, apples.ProductID, 3)
	stageItem(t, db, user.UserID, milk.ProductID, 1)

	orders, err := PlaceOrder(db, user.UserID)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, 7, availableQty(t, db, apples.ProductID))
	assert.Equal(t, 3, availableQty(t, db, milk.ProductID))

	// Both lines share one placement timestamp.
	assert.True(t, orders[0].OrderDate.Equal(orders[1].OrderDate))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "empty")

	_, err := PlaceOrder(db, user.UserID)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderInsufficientStockRollsBackEverything(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "greedy")
	apples := seedProduct(t, db, "Apples", "2.50", 10)
	milk := seedProduct(t, db, "Milk", "3.20", 1)
	stageItem(t, db, user.UserID, apples.ProductID, 2)
	stageItem(t, db, user.UserID, milk.ProductID, 5)

	_, err := PlaceOrder(db, user.UserID)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, milk.ProductID, stockErr.ProductID)
	assert.Equal(t, "Milk", stockErr.Title)

	// The passing first line must not leak: no orders, no stock change,
	// and the cart survives for a retry.
	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
	assert.Equal(t, 10, availableQty(t, db, apples.ProductID))
	assert.Equal(t, 1, availableQty(t, db, milk.ProductID))

	var cartCount int64
	require.NoError(t, db.Model(&models.CheckoutItem{}).Where("user_id = ?", user.UserID).Count(&cartCount).Error)
	assert.EqualValues(t, 2, cartCount)
}

func TestPlaceOrderStockNeverGoesNegative(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "over")
	eggs := seedProduct(t, db, "Eggs", "4.00", 3)
	stageItem(t, db, user.UserID, eggs.ProductID, 4)

	_, err := PlaceOrder(db, user.UserID)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, availableQty(t, db, eggs.ProductID))
}

func TestPlaceOrderClearsCheckout(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "clears")
	other := seedUser(t, db, "bystander")
	apples := seedProduct(t, db, "Apples", "2.50", 10)
	stageItem(t, db, user.UserID, apples.ProductID, 2)
	stageItem(t, db, other.UserID, apples.ProductID, 1)

	_, err := PlaceOrder(db, user.UserID)
	require.NoError(t, err)

	var mine, theirs int64
	require.NoError(t, db.Model(&models.CheckoutItem{}).Where("user_id = ?", user.UserID).Count(&mine).Error)
	require.NoError(t, db.Model(&models.CheckoutItem{}).Where("user_id = ?", other.UserID).Count(&theirs).Error)
	assert.Zero(t, mine)
	assert.EqualValues(t, 1, theirs)
}

func TestPlaceOrderConcurrentBuyersCannotOversell(t *testing.T) {
	db := testdb.Open(t)
	first := seedUser(t, db, "fast")
	second := seedUser(t, db, "faster")
	lastUnit := seedProduct(t, db, "Truffle", "19.99", 1)
	stageItem(t, db, first.UserID, lastUnit.ProductID, 1)
	stageItem(t, db, second.UserID, lastUnit.ProductID, 1)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, userID := range []uint{first.UserID, second.UserID} {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			_, errs[i] = PlaceOrder(db, userID)
		}(i, userID)
	}
	wg.Wait()

	var stockErrs, successes int
	for _, err := range errs {
		var stockErr *InsufficientStockError
		switch {
		case err == nil:
			successes++
		case errors.As(err, &stockErr):
			stockErrs++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, stockErrs)
	assert.Equal(t, 0, availableQty(t, db, lastUnit.ProductID))

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 1, orderCount)
}
