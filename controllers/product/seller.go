package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/models"
)

// GET /api/products/my-products
// Sellers see their own catalog; admins see everything.
func GetSellerProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		query := db.Model(&models.Product{})
		if !middleware.IsAdmin(c) {
			query = query.Where("product_created_by = ?", userID)
		}

		var products []models.Product
		if err := query.Order("product_id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"sellerId": userID, "isAdmin": middleware.IsAdmin(c), "products": products})
	}
}

// GET /api/products/sales-summary
// Units sold for the caller's products over day/week/month/year windows.
func GetSalesSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		isAdmin := middleware.IsAdmin(c)

		now := time.Now().UTC()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)

		soldSince := func(since time.Time) (int64, error) {
			query := db.Model(&models.Order{}).
				Joins("JOIN products ON products.product_id = orders.product_id").
				Where("orders.order_date >= ?", since)
			if !isAdmin {
				query = query.Where("products.product_created_by = ?", userID)
			}
			var total int64
			err := query.Select("COALESCE(SUM(orders.quantity), 0)").Scan(&total).Error
			return total, err
		}

		sales := gin.H{}
		for label, since := range map[string]time.Time{
			"day":   startOfDay,
			"week":  startOfWeek,
			"month": startOfMonth,
			"year":  startOfYear,
		} {
			total, err := soldSince(since)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate sales summary"})
				return
			}
			sales[label] = total
		}

		c.JSON(http.StatusOK, gin.H{"sellerId": userID, "isAdmin": isAdmin, "sales": sales})
	}
}
