package favoriteControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/models"
)

type ToggleInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

// POST /api/favorites/toggle
// Adds the product to the caller's favorites, or removes it if already present.
func ToggleFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input ToggleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var fav models.Favorite
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&fav).Error
		if err == nil {
			if err := db.Delete(&fav).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites", "favorited": false})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favorite"})
			return
		}

		fav = models.Favorite{UserID: userID, ProductID: input.ProductID}
		if err := db.Create(&fav).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Added to favorites", "favorited": true})
	}
}

// GET /api/favorites
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var favorites []models.Favorite
		if err := db.Preload("Product").Where("user_id = ?", userID).Order("favorite_id desc").Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}

		products := make([]models.Product, 0, len(favorites))
		for _, f := range favorites {
			if f.Product != nil {
				products = append(products, *f.Product)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"totalFavorites": len(products),
			"products":       products,
		})
	}
}
