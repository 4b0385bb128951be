package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/config"
	userControllers "github.com/rakshit9/WDM-ecom/controllers/user"
	"github.com/rakshit9/WDM-ecom/middleware"
)

// SetupUserRoutes registers signup/login plus the JWT-protected profile endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	users := api.Group("/users")
	{
		users.POST("/signup", userControllers.Signup(db))
		users.POST("/login", userControllers.Login(db, cfg.JWTSecret))
	}

	protected := api.Group("/users")
	protected.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		protected.GET("/profile", userControllers.GetProfile(db))
		protected.PUT("/address", userControllers.UpdateAddress(db))
		protected.GET("/", userControllers.GetAllUsers(db))
		protected.PUT("/:id", userControllers.UpdateUser(db))
		protected.DELETE("/:id", userControllers.DeleteUser(db))
	}
}
