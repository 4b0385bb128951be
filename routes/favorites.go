package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/config"
	favoriteControllers "github.com/rakshit9/WDM-ecom/controllers/favorite"
	"github.com/rakshit9/WDM-ecom/middleware"
)

func SetupFavoriteRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	favorites := api.Group("/favorites")
	favorites.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		favorites.POST("/toggle", favoriteControllers.ToggleFavorite(db))
		favorites.GET("/", favoriteControllers.GetFavorites(db))
	}
}
