package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/config"
	orderControllers "github.com/rakshit9/WDM-ecom/controllers/order"
	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/pricing"
)

// SetupOrderRoutes registers order placement, history, and reviews. All require a token.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config, engine pricing.Engine) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		orders.POST("/place", orderControllers.PlaceOrderHandler(db))
		orders.GET("/user/:userId", orderControllers.OrderHistoryHandler(db, engine))
		orders.POST("/review", orderControllers.SubmitReviewHandler(db))
		orders.PUT("/review", orderControllers.UpdateReviewHandler(db))
	}
}
