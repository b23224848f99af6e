package http

import (
	"github.com/gin-gonic/gin"
	"github.com/layer-3/vouch/service"
)

// SetupRouter sets up the Gin router
func SetupRouter(authService *service.AuthService) *gin.Engine {
	router := gin.Default()

	// Engine-level so preflight OPTIONS requests get CORS headers even
	// though no OPTIONS routes are registered
	router.Use(CORSMiddleware())

	// Create handlers
	handlers := NewAuthHandlers(authService)

	api := router.Group("/api")
	{
		api.POST("/signup", handlers.Signup)
		api.POST("/login", handlers.Login)
		api.POST("/login-step2", handlers.LoginStep2)
	}

	// Routes requiring a full session
	protected := api.Group("")
	protected.Use(AuthMiddleware(authService))
	{
		protected.GET("/profile", handlers.Profile)
		protected.POST("/generate-2fa-secret", handlers.Generate2FASecret)
		protected.POST("/verify-otp", handlers.VerifyOTP)
		protected.POST("/disable-2fa", handlers.Disable2FA)
	}

	router.NoRoute(handlers.NotFound)

	return router
}
