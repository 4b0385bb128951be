package checkoutControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/models"
	"github.com/rakshit9/WDM-ecom/pricing"
)

type CheckoutItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// Line is one priced cart row in a response.
type Line struct {
	ProductID uint    `json:"productId"`
	Title     string  `json:"title"`
	Brand     string  `json:"brand"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

func toLine(item models.CheckoutItem) Line {
	l := Line{ProductID: item.ProductID, Quantity: item.Quantity}
	if item.Product != nil {
		l.Title = item.Product.Title
		l.Brand = item.Product.Brand
		if len(item.Product.Images) > 0 {
			l.Image = item.Product.Images[0]
		}
		l.Price = item.Product.Price.InexactFloat64()
		l.Subtotal = pricing.LineSubtotal(item.Product.Price, item.Quantity).InexactFloat64()
	}
	return l
}

// POST /api/checkout/add
// Stock is not validated here; the order pipeline re-checks it at
// placement time.
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CheckoutItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "product_id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		// One row per (user, product): a second add merges quantities.
		var item models.CheckoutItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CheckoutItem{
				UserID:    userID,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to checkout"})
				return
			}
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checkout item"})
			return
		default:
			item.Quantity += input.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update checkout item"})
				return
			}
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Product added to checkout", "item": item})
	}
}

// GET /api/checkout
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var items []models.CheckoutItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checkout"})
			return
		}

		lines := make([]Line, 0, len(items))
		total := 0.0
		for _, item := range items {
			l := toLine(item)
			lines = append(lines, l)
			total += l.Subtotal
		}

		c.JSON(http.StatusOK, gin.H{"userId": userID, "total": total, "items": lines})
	}
}

// PUT /api/checkout/update
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CheckoutItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CheckoutItem
		if err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in checkout"})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Quantity updated", "item": item})
	}
}

// DELETE /api/checkout/:productId
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", userID, uint(productID)).Delete(&models.CheckoutItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in checkout"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from checkout"})
	}
}

// GET /api/orders/confirmation
// Prices the current cart through the engine without touching stock.
func Confirmation(db *gorm.DB, engine pricing.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var items []models.CheckoutItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checkout"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No items in checkout"})
			return
		}

		lines := make([]Line, 0, len(items))
		engineLines := make([]pricing.Line, 0, len(items))
		for _, item := range items {
			lines = append(lines, toLine(item))
			if item.Product != nil {
				engineLines = append(engineLines, pricing.Line{
					UnitPrice: item.Product.Price,
					Quantity:  item.Quantity,
				})
			}
		}

		totals := engine.Summarize(engineLines)
		c.JSON(http.StatusOK, gin.H{
			"userId":         userID,
			"items":          lines,
			"totalBeforeTax": totals.Subtotal.InexactFloat64(),
			"tax":            totals.Tax.InexactFloat64(),
			"deliveryFee":    totals.DeliveryFee.InexactFloat64(),
			"grandTotal":     totals.GrandTotal.InexactFloat64(),
		})
	}
}
