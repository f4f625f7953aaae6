package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "memoku_backend/internals/features/users/auth/controller"
	rateLimiter "memoku_backend/internals/middlewares"
	authMw "memoku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// 🔒 Protected
	protected := baseAuth.Group("", authMw.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Post("/change-password", authController.ChangePassword)
	protected.Get("/me", authController.Me)
}
