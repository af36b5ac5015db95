package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/chukyobi/lumina-eccomerce/controllers/product"
	"github.com/chukyobi/lumina-eccomerce/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the API-key-protected operator endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db)) // GET /admin/products/export
	}
}
