package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chukyobi/lumina-eccomerce/cart"
	"github.com/chukyobi/lumina-eccomerce/catalog"
	"github.com/chukyobi/lumina-eccomerce/models"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the Auth, Catalog,
// User, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Manager) {
	reader := catalog.NewReader(db)
	users := models.NewUserRepository(db)

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, users)

	// Public catalog browsing
	SetupCatalogRoutes(r, reader)

	// User routes (JWT-protected, user or guest sessions)
	SetupUserRoutes(r, users, reader, carts)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
