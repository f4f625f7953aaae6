package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	areaController "memoku_backend/internals/features/organization/areas/controller"
)

// AreaAdminRoutes: CRUD area, dipasang di bawah group MO.
func AreaAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := areaController.NewAreaController(db)

	areas := api.Group("/areas")
	areas.Get("/", ctrl.List)
	areas.Post("/", ctrl.Create)
	areas.Put("/:id", ctrl.Update)
	areas.Delete("/:id", ctrl.Delete)
}

// AreaPublicRoutes: list area untuk dropdown (role apa pun yang login).
func AreaPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := areaController.NewAreaController(db)
	api.Get("/areas", ctrl.List)
}
