package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/models"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrNotOrderOwner  = errors.New("unauthorized to review this order")
	ErrReviewExists   = errors.New("review already submitted for this product and order")
	ErrReviewNotFound = errors.New("review not found")
	ErrBlankReview    = errors.New("review text is required")
)

type ReviewInput struct {
	ProductID  uint   `json:"productId" binding:"required"`
	OrderID    uint   `json:"orderId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	UserReview string `json:"userReview" binding:"required"`
}

// SubmitReview creates the single review allowed for a
// (user, product, order) triple. The order must belong to the caller and
// reference the claimed product.
func SubmitReview(db *gorm.DB, userID uint, input ReviewInput) (*models.Rating, error) {
	if strings.TrimSpace(input.UserReview) == "" {
		return nil, ErrBlankReview
	}

	var order models.Order
	if err := db.First(&order, "order_id = ?", input.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID || order.ProductID != input.ProductID {
		return nil, ErrNotOrderOwner
	}

	var existing models.Rating
	err := db.Where("user_id = ? AND product_id = ? AND order_id = ?", userID, input.ProductID, input.OrderID).
		First(&existing).Error
	if err == nil {
		return nil, ErrReviewExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := models.Rating{
		Rating:     input.Rating,
		UserReview: strings.TrimSpace(input.UserReview),
		UserID:     userID,
		ProductID:  input.ProductID,
		OrderID:    input.OrderID,
	}
	// The composite unique index backs this up if two submissions race.
	if err := db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview edits an existing review in place, keyed by the same
// unique triple. Creating and editing are separate operations.
func UpdateReview(db *gorm.DB, userID uint, input ReviewInput) (*models.Rating, error) {
	if strings.TrimSpace(input.UserReview) == "" {
		return nil, ErrBlankReview
	}

	var review models.Rating
	err := db.Where("user_id = ? AND product_id = ? AND order_id = ?", userID, input.ProductID, input.OrderID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	review.Rating = input.Rating
	review.UserReview = strings.TrimSpace(input.UserReview)
	if err := db.Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// POST /api/orders/review
func SubmitReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		review, err := SubmitReview(db, userID, input)
		if err != nil {
			switch {
			case errors.Is(err, ErrBlankReview):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, ErrNotOrderOwner):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			case errors.Is(err, ErrReviewExists):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully", "review": review})
	}
}

// PUT /api/orders/review
func UpdateReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		review, err := UpdateReview(db, userID, input)
		if err != nil {
			switch {
			case errors.Is(err, ErrBlankReview):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, ErrReviewNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully", "review": review})
	}
}
