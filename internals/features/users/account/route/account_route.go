package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accountController "memoku_backend/internals/features/users/account/controller"
)

// AccountRoutes: CRUD akun, dipasang di bawah group MO.
func AccountRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := accountController.NewAccountController(db)

	accounts := api.Group("/manage-account")
	accounts.Get("/", ctrl.List)
	accounts.Get("/:id", ctrl.GetByID)
	accounts.Post("/", ctrl.Create)
	accounts.Put("/:id", ctrl.Update)
	accounts.Delete("/:id", ctrl.Delete)
}
