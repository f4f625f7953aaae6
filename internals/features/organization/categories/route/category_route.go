package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryController "memoku_backend/internals/features/organization/categories/controller"
)

// CategoryAdminRoutes: CRUD kategori, dipasang di bawah group MO.
func CategoryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := categoryController.NewCategoryController(db)

	categories := api.Group("/categories")
	categories.Get("/", ctrl.List)
	categories.Post("/", ctrl.Create)
	categories.Put("/:id", ctrl.Update)
	categories.Delete("/:id", ctrl.Delete)
}

// CategoryPublicRoutes: list kategori untuk dropdown.
func CategoryPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := categoryController.NewCategoryController(db)
	api.Get("/categories", ctrl.List)
}
