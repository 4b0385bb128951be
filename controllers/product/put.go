package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/ai"
	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/models"
)

type UpdateProductInput struct {
	Title        *string  `json:"title"`
	Brand        *string  `json:"brand"`
	Type         *string  `json:"type"`
	Price        *string  `json:"price"`
	AvailableQty *int     `json:"availableQty"`
	Description  *string  `json:"description"`
	Images       []string `json:"images"`
}

// PUT /api/products/:productId (owning seller or admin)
// Editing availableQty here is the catalog path: it does not reconcile
// with staged carts, which are re-validated at checkout time.
func UpdateProduct(db *gorm.DB, gen ai.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, "product_id = ?", uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		if product.ProductCreatedBy != userID && !middleware.IsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized to update this product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		regenerateDescription := false
		if input.Title != nil && *input.Title != "" && *input.Title != product.Title {
			product.Title = *input.Title
			regenerateDescription = true
		}
		if input.Type != nil && *input.Type != "" && *input.Type != product.Type {
			product.Type = *input.Type
			regenerateDescription = true
		}
		if input.Brand != nil && *input.Brand != "" {
			product.Brand = *input.Brand
		}
		if input.Price != nil {
			price, err := decimal.NewFromString(*input.Price)
			if err != nil || price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if input.AvailableQty != nil {
			if *input.AvailableQty < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "availableQty cannot be negative"})
				return
			}
			product.AvailableQty = *input.AvailableQty
		}
		if len(input.Images) > 0 {
			product.Images = input.Images
		}
		if input.Description != nil && *input.Description != "" {
			product.Description = *input.Description
		} else if regenerateDescription {
			product.Description = ai.Describe(c.Request.Context(), gen, product.Title, product.Type)
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
	}
}
