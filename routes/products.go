package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/ai"
	"github.com/rakshit9/WDM-ecom/config"
	productcontroller "github.com/rakshit9/WDM-ecom/controllers/product"
	"github.com/rakshit9/WDM-ecom/middleware"
)

// SetupProductRoutes registers the public catalog endpoints and the
// JWT-protected seller/admin management endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config, gen ai.Generator) {
	products := api.Group("/products")
	{
		products.GET("/", productcontroller.GetProducts(db))
		products.GET("/filters", productcontroller.GetProductFilters(db))
		products.GET("/:productId", productcontroller.GetProductByID(db))
		products.GET("/rating-summary/:productId", productcontroller.GetRatingSummary(db))
	}

	protected := api.Group("/products")
	protected.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		protected.POST("/", productcontroller.CreateProduct(db, gen, cfg.UploadsDir))
		protected.PUT("/:productId", productcontroller.UpdateProduct(db, gen))
		protected.DELETE("/:productId", productcontroller.DeleteProduct(db))
		protected.POST("/generate-description", productcontroller.GenerateDescription(gen))
		protected.GET("/my-products", productcontroller.GetSellerProducts(db))
		protected.GET("/sales-summary", productcontroller.GetSalesSummary(db))
		protected.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		protected.GET("/is-favorite", productcontroller.IsFavorite(db))
	}
}
