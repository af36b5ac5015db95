package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /categories
func GetCategories(provider CatalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, provider.ListCategories())
	}
}

// GET /categories/:slug — the category plus its products, as rendered by
// category pages.
func GetCategoryBySlug(provider CatalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		category := provider.GetCategoryBySlug(slug)
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"category": category,
			"products": provider.ListByCategorySlug(slug),
		})
	}
}
