package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chukyobi/lumina-eccomerce/cart"
	"github.com/chukyobi/lumina-eccomerce/catalog"
	cartControllers "github.com/chukyobi/lumina-eccomerce/controllers/cart"
	userControllers "github.com/chukyobi/lumina-eccomerce/controllers/user"
	"github.com/chukyobi/lumina-eccomerce/middleware"
	"github.com/chukyobi/lumina-eccomerce/models"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware;
// guest tokens are accepted so anonymous shoppers can carry a cart.
func SetupUserRoutes(r *gin.Engine, users *models.UserRepository, reader *catalog.Reader, carts *cart.Manager) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetUser(users)) // GET /user/

		// Shopping cart
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(carts))                              // GET /user/cart
			cartGroup.POST("/items", cartControllers.AddCartItem(carts, reader))            // POST /user/cart/items
			cartGroup.PUT("/items/:product_id", cartControllers.UpdateCartItem(carts))      // PUT /user/cart/items/:product_id
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(carts))   // DELETE /user/cart/items/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCart(carts))                         // DELETE /user/cart
		}

		// Simulated checkout: clears the cart, persists nothing
		userGroup.POST("/checkout", cartControllers.Checkout(carts)) // POST /user/checkout
	}
}
