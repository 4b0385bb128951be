package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/models"
)

// ErrEmptyCart is returned when placement is attempted with nothing
// staged in checkout.
var ErrEmptyCart = errors.New("no items in checkout to place an order")

// InsufficientStockError names the first product whose stock could not
// cover the requested quantity.
type InsufficientStockError struct {
	ProductID uint
	Title     string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.Title)
}

// PlaceOrder converts the user's checkout lines into order rows,
// decrements stock and clears the checkout. The whole operation is one
// transaction: a failing line leaves no orders and no stock changes
// behind, so the caller may safely retry.
func PlaceOrder(db *gorm.DB, userID uint) ([]models.Order, error) {
	var items []models.CheckoutItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	created := make([]models.Order, 0, len(items))
	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, item := range items {
			// The stock check and the decrement are a single conditional
			// UPDATE, so two concurrent checkouts cannot both pass the
			// check and oversell the product.
			res := tx.Model(&models.Product{}).
				Where("product_id = ? AND available_qty >= ?", item.ProductID, item.Quantity).
				UpdateColumn("available_qty", gorm.Expr("available_qty - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				title := ""
				if item.Product != nil {
					title = item.Product.Title
				}
				return &InsufficientStockError{ProductID: item.ProductID, Title: title}
			}

			order := models.Order{
				UserID:    userID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				OrderDate: now,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			created = append(created, order)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CheckoutItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// POST /api/orders/place
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orders, err := PlaceOrder(db, userID)
		if err != nil {
			var stockErr *InsufficientStockError
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error(), "productId": stockErr.ProductID})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":     "Order placed successfully",
			"totalOrders": len(orders),
			"orders":      orders,
		})
	}
}
