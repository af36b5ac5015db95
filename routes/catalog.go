package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chukyobi/lumina-eccomerce/catalog"
	productControllers "github.com/chukyobi/lumina-eccomerce/controllers/product"
)

// SetupCatalogRoutes registers the public read-only catalog endpoints.
func SetupCatalogRoutes(r *gin.Engine, reader *catalog.Reader) {
	r.GET("/products", productControllers.GetProducts(reader))          // GET /products?category=&featured=
	r.GET("/products/:id", productControllers.GetProductByID(reader))   // GET /products/:id
	r.GET("/categories", productControllers.GetCategories(reader))      // GET /categories
	r.GET("/categories/:slug", productControllers.GetCategoryBySlug(reader)) // GET /categories/:slug
}
