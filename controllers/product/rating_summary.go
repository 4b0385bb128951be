package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/models"
)

// GET /api/products/rating-summary/:productId
func GetRatingSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		productID := uint(id)

		var summary struct {
			AverageRating float64
			TotalReviews  int64
		}
		if err := db.Model(&models.Rating{}).
			Where("product_id = ?", productID).
			Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_reviews").
			Scan(&summary).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rating summary"})
			return
		}

		var ratings []models.Rating
		if err := db.Preload("User").
			Where("product_id = ?", productID).
			Order("created_at DESC").
			Find(&ratings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		reviews := make([]gin.H, 0, len(ratings))
		for _, r := range ratings {
			name := ""
			if r.User != nil {
				name = r.User.FirstName + " " + r.User.LastName
			}
			reviews = append(reviews, gin.H{
				"user":   name,
				"rating": r.Rating,
				"review": r.UserReview,
				"date":   r.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"productId":     productID,
			"averageRating": fmt.Sprintf("%.1f", summary.AverageRating),
			"totalReviews":  summary.TotalReviews,
			"reviews":       reviews,
		})
	}
}
