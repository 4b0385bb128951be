package productcontroller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/models"
)

var sortColumns = map[string]string{
	"price":        "price",
	"title":        "title",
	"brand":        "brand",
	"type":         "type",
	"availableQty": "available_qty",
}

// GET /api/products
// Supports search, type/brand/price/stock filters, sorting and
// page-based pagination.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		productType := c.QueryArray("type")
		brand := c.QueryArray("brand")
		minPriceStr := c.Query("minPrice")
		maxPriceStr := c.Query("maxPrice")
		inStock := c.Query("inStock")

		sortBy := c.DefaultQuery("sortBy", "price")
		column, ok := sortColumns[sortBy]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sortBy"})
			return
		}
		order := strings.ToLower(c.DefaultQuery("order", "asc"))
		if order != "asc" && order != "desc" {
			order = "asc"
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
		if limit < 1 {
			limit = 12
		}

		query := db.Model(&models.Product{})

		if search != "" {
			pattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(type) LIKE ?",
				pattern, pattern, pattern, pattern,
			)
		}
		if len(productType) > 0 {
			query = query.Where("type IN ?", productType)
		}
		if len(brand) > 0 {
			query = query.Where("brand IN ?", brand)
		}
		if inStock == "true" {
			query = query.Where("available_qty > 0")
		} else if inStock == "false" {
			query = query.Where("available_qty = 0")
		}
		if minPriceStr != "" {
			min, err := decimal.NewFromString(minPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
				return
			}
			query = query.Where("price >= ?", min)
		}
		if maxPriceStr != "" {
			max, err := decimal.NewFromString(maxPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
				return
			}
			query = query.Where("price <= ?", max)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Order(column + " " + order).
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalProducts": count,
			"totalPages":    int(math.Ceil(float64(count) / float64(limit))),
			"currentPage":   page,
			"products":      products,
		})
	}
}

// GET /api/products/filters
// Distinct brands/types plus the price range, optionally narrowed by a
// search keyword.
func GetProductFilters(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("q")

		query := db.Model(&models.Product{})
		if keyword != "" {
			pattern := "%" + strings.ToLower(keyword) + "%"
			query = query.Where(
				"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(type) LIKE ?",
				pattern, pattern, pattern, pattern,
			)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filter data"})
			return
		}

		brandSet := make(map[string]struct{})
		typeSet := make(map[string]struct{})
		var brands, types []string
		var minPrice, maxPrice decimal.Decimal
		for i, p := range products {
			if _, ok := brandSet[p.Brand]; !ok {
				brandSet[p.Brand] = struct{}{}
				brands = append(brands, p.Brand)
			}
			if _, ok := typeSet[p.Type]; !ok {
				typeSet[p.Type] = struct{}{}
				types = append(types, p.Type)
			}
			if i == 0 {
				minPrice, maxPrice = p.Price, p.Price
				continue
			}
			if p.Price.LessThan(minPrice) {
				minPrice = p.Price
			}
			if p.Price.GreaterThan(maxPrice) {
				maxPrice = p.Price
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"keyword": keyword,
			"brands":  brands,
			"types":   types,
			"priceRange": gin.H{
				"min": minPrice.InexactFloat64(),
				"max": maxPrice.InexactFloat64(),
			},
		})
	}
}
