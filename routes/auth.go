package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/chukyobi/lumina-eccomerce/auth"
	userControllers "github.com/chukyobi/lumina-eccomerce/controllers/user"
	"github.com/chukyobi/lumina-eccomerce/models"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, users *models.UserRepository) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", userControllers.Signup(users)) // POST /auth/signup
		authGroup.POST("/login", userControllers.Login(users))   // POST /auth/login
		authGroup.POST("/guest", auth.CreateGuestSession())      // POST /auth/guest
	}
}
