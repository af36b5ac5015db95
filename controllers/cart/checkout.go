package cartControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/chukyobi/lumina-eccomerce/cart"
)

// POST /user/checkout
//
// Checkout is simulated: no order row is written and no payment is captured.
// The cart is cleared and an order-shaped summary is echoed back so the
// confirmation page has something to show.
func Checkout(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.Load(c.Request.Context(), sessionID(c))
		if store.Len() == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		summary := store.Snapshot()
		if err := carts.Clear(c.Request.Context(), sessionID(c)); err != nil {
			log.Printf("cart: failed to clear cart after checkout for %q: %v", sessionID(c), err)
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Order placed",
			"order_id":   "order_" + uuid.NewString(),
			"items":      summary.Items,
			"total":      summary.Subtotal,
			"created_at": time.Now().UTC(),
		})
	}
}
