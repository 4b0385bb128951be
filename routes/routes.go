package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakshit9/WDM-ecom/ai"
	"github.com/rakshit9/WDM-ecom/config"
	chatControllers "github.com/rakshit9/WDM-ecom/controllers/chat"
	"github.com/rakshit9/WDM-ecom/pricing"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, engine pricing.Engine, gen ai.Generator, hub *chatControllers.Hub) {
	api := r.Group("/api")

	SetupUserRoutes(api, db, cfg)
	SetupProductRoutes(api, db, cfg, gen)
	SetupCheckoutRoutes(api, db, cfg, engine)
	SetupOrderRoutes(api, db, cfg, engine)
	SetupFavoriteRoutes(api, db, cfg)
	SetupChatRoutes(api, db, cfg, hub)
}
