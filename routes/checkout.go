package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/config"
	checkoutControllers "github.com/rakshit9/WDM-ecom/controllers/checkout"
	"github.com/rakshit9/WDM-ecom/middleware"
	"github.com/rakshit9/WDM-ecom/pricing"
)

// SetupCheckoutRoutes registers the staging-cart endpoints. All require a token.
func SetupCheckoutRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config, engine pricing.Engine) {
	checkout := api.Group("/checkout")
	checkout.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		checkout.POST("/add", checkoutControllers.AddItem(db))
		checkout.GET("/", checkoutControllers.GetItems(db))
		checkout.PUT("/update", checkoutControllers.UpdateQuantity(db))
		checkout.DELETE("/:productId", checkoutControllers.RemoveItem(db))
		checkout.GET("/confirmation", checkoutControllers.Confirmation(db, engine))
	}
}
