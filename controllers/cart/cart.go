package cartControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/chukyobi/lumina-eccomerce/cart"
	"github.com/chukyobi/lumina-eccomerce/catalog"
)

// ProductFinder resolves the product being added so its name, price and
// image can be captured into the cart line.
type ProductFinder interface {
	GetByID(id string) *catalog.Product
}

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateItemInput carries no binding constraint on purpose: quantity 0 must
// reach the store's guard and come back as a 200 no-op, and a "required" tag
// would reject the zero value at the boundary instead.
type UpdateItemInput struct {
	Quantity int `json:"quantity"`
}

// sessionID is set by the JWT middleware for both user and guest tokens.
func sessionID(c *gin.Context) string {
	return c.GetString("user_id")
}

// persist writes the cart back best-effort: a failed save is an operator
// problem, not a shopper-facing error.
func persist(c *gin.Context, carts *cart.Manager, store *cart.Store) {
	if err := carts.Save(c.Request.Context(), sessionID(c), store); err != nil {
		log.Printf("cart: failed to persist cart for %q: %v", sessionID(c), err)
	}
}

// GET /user/cart
func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.Load(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, store.Snapshot())
	}
}

// POST /user/cart/items
func AddCartItem(carts *cart.Manager, products ProductFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := products.GetByID(input.ProductID)
		if product == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		store := carts.Load(c.Request.Context(), sessionID(c))
		store.Add(cart.Product{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			ImageURL: product.ImageURL,
		}, input.Quantity)
		persist(c, carts, store)

		c.JSON(http.StatusCreated, store.Snapshot())
	}
}

// PUT /user/cart/items/:product_id
//
// A quantity below 1 is answered with the unchanged cart: the guard is part
// of the cart contract, items are only removed via DELETE.
func UpdateCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := carts.Load(c.Request.Context(), sessionID(c))
		store.UpdateQuantity(productID, input.Quantity)
		persist(c, carts, store)

		c.JSON(http.StatusOK, store.Snapshot())
	}
}

// DELETE /user/cart/items/:product_id — idempotent.
func DeleteCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")

		store := carts.Load(c.Request.Context(), sessionID(c))
		store.Remove(productID)
		persist(c, carts, store)

		c.JSON(http.StatusOK, store.Snapshot())
	}
}

// DELETE /user/cart
func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Clear(c.Request.Context(), sessionID(c)); err != nil {
			log.Printf("cart: failed to clear cart for %q: %v", sessionID(c), err)
		}
		c.JSON(http.StatusOK, cart.NewStore().Snapshot())
	}
}
