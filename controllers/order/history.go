package orderControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/models"
	"github.com/rakshit9/WDM-ecom/pricing"
)

// HistoryOrder is one purchased line inside a group. Subtotal comes from
// the product's current price, not a price-at-purchase snapshot.
type HistoryOrder struct {
	OrderID  uint            `json:"orderId"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
	Product  *models.Product `json:"product"`
	Review   *string         `json:"review"`
	Rating   *int            `json:"rating"`
}

// HistoryGroup is one calendar day of purchases. There is no checkout
// batch identifier, so separate same-day checkouts merge into one group.
type HistoryGroup struct {
	OrderDate   time.Time      `json:"orderDate"`
	TotalOrders int            `json:"totalOrders"`
	Subtotal    float64        `json:"totalBeforeTax"`
	Tax         float64        `json:"tax"`
	DeliveryFee float64        `json:"deliveryFee"`
	GrandTotal  float64        `json:"grandTotal"`
	Orders      []HistoryOrder `json:"orders"`
}

// OrderHistory loads the user's order ledger grouped by purchase date
// (UTC, newest first), attaches the unique review per line and reprices
// each group through the engine.
func OrderHistory(db *gorm.DB, engine pricing.Engine, userID uint) ([]HistoryGroup, error) {
	var orders []models.Order
	if err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("order_date DESC, order_id").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	var ratings []models.Rating
	if err := db.Where("user_id = ?", userID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	type reviewKey struct{ productID, orderID uint }
	reviews := make(map[reviewKey]models.Rating, len(ratings))
	for _, r := range ratings {
		reviews[reviewKey{r.ProductID, r.OrderID}] = r
	}

	type bucket struct {
		date     time.Time
		subtotal decimal.Decimal
		orders   []HistoryOrder
	}
	buckets := make(map[string]*bucket)
	var keys []string

	for _, o := range orders {
		key := o.OrderDate.UTC().Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{date: o.OrderDate}
			buckets[key] = b
			keys = append(keys, key)
		}

		sub := decimal.Zero
		if o.Product != nil {
			sub = pricing.LineSubtotal(o.Product.Price, o.Quantity)
		}

		line := HistoryOrder{
			OrderID:  o.OrderID,
			Quantity: o.Quantity,
			Subtotal: sub.InexactFloat64(),
			Product:  o.Product,
		}
		if r, ok := reviews[reviewKey{o.ProductID, o.OrderID}]; ok {
			review := r.UserReview
			rating := r.Rating
			line.Review = &review
			line.Rating = &rating
		}

		b.orders = append(b.orders, line)
		b.subtotal = b.subtotal.Add(sub)
	}

	// keys were appended while walking orders sorted by date descending,
	// so group order is already newest first.
	groups := make([]HistoryGroup, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		totals := engine.FromSubtotal(b.subtotal.Round(2))
		groups = append(groups, HistoryGroup{
			OrderDate:   b.date,
			TotalOrders: len(b.orders),
			Subtotal:    totals.Subtotal.InexactFloat64(),
			Tax:         totals.Tax.InexactFloat64(),
			DeliveryFee: totals.DeliveryFee.InexactFloat64(),
			GrandTotal:  totals.GrandTotal.InexactFloat64(),
			Orders:      b.orders,
		})
	}
	return groups, nil
}

// GET /api/orders/user/:userId (owner or admin)
func OrderHistoryHandler(db *gorm.DB, engine pricing.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID64, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		userID := uint(userID64)
		if userID != callerID && !middleware.IsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized to view these orders"})
			return
		}

		groups, err := OrderHistory(db, engine, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID, "orders": groups})
	}
}
