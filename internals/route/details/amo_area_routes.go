package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"memoku_backend/internals/constants"
	docRoute "memoku_backend/internals/features/documents/document/route"
	areaRoute "memoku_backend/internals/features/organization/areas/route"
	categoryRoute "memoku_backend/internals/features/organization/categories/route"
	"memoku_backend/internals/helpers/storage"
	authMw "memoku_backend/internals/middlewares/auth"
)

// AmoAreaRoutes: /api/amo-area — pengunggah dokumen MEMO.
func AmoAreaRoutes(api fiber.Router, db *gorm.DB, store storage.BlobStore) {
	group := api.Group("/amo-area",
		authMw.AuthMiddleware(db),
		authMw.OnlyRolesSlice(constants.RoleErrorAmoArea("dokumen MEMO"), constants.AmoAreaOnly),
	)

	docRoute.AmoAreaDocumentRoutes(group, db, store)

	// Referensi dropdown form upload.
	areaRoute.AreaPublicRoutes(group, db)
	categoryRoute.CategoryPublicRoutes(group, db)
}
