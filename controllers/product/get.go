package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/chukyobi/lumina-eccomerce/catalog"
)

// CatalogProvider is the slice of the catalog reader the product handlers
// need. The concrete implementation is *catalog.Reader; tests substitute a
// mock.
type CatalogProvider interface {
	List(filter catalog.Filter) []catalog.Product
	GetByID(id string) *catalog.Product
	ListCategories() []catalog.Category
	GetCategoryBySlug(slug string) *catalog.Category
	ListByCategorySlug(slug string) []catalog.Product
}

// GET /products?category=<id>&featured=true
func GetProducts(provider CatalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{
			CategoryID: c.Query("category"),
			Featured:   c.Query("featured") == "true",
		}
		// Reads degrade to an empty list on store failure, so this is
		// always a 200.
		c.JSON(http.StatusOK, provider.List(filter))
	}
}

// GET /products/:id
func GetProductByID(provider CatalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product := provider.GetByID(id)
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
