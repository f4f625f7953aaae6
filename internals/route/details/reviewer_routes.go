package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"memoku_backend/internals/constants"
	docRoute "memoku_backend/internals/features/documents/document/route"
	areaRoute "memoku_backend/internals/features/organization/areas/route"
	categoryRoute "memoku_backend/internals/features/organization/categories/route"
	accountRoute "memoku_backend/internals/features/users/account/route"
	"memoku_backend/internals/helpers/storage"
	authMw "memoku_backend/internals/middlewares/auth"
)

// AmoRegionRoutes: /api/amo-region — review tahap pertama, dibatasi
// area tanggung jawab masing-masing region.
func AmoRegionRoutes(api fiber.Router, db *gorm.DB, store storage.BlobStore) {
	group := api.Group("/amo-region",
		authMw.AuthMiddleware(db),
		authMw.OnlyRolesSlice(constants.RoleErrorAmoRegion("review dokumen"), constants.AmoRegionOnly),
	)

	docRoute.ReviewerDocumentRoutes(group, db, store)
	areaRoute.AreaPublicRoutes(group, db)
	categoryRoute.CategoryPublicRoutes(group, db)
}

// MORoutes: /api/mo — review tahap kedua + administrasi master data
// (akun, area, kategori).
func MORoutes(api fiber.Router, db *gorm.DB, store storage.BlobStore) {
	group := api.Group("/mo",
		authMw.AuthMiddleware(db),
		authMw.OnlyRolesSlice(constants.RoleErrorMO("review dokumen"), constants.MOOnly),
	)

	docRoute.ReviewerDocumentRoutes(group, db, store)
	docRoute.SignerDocumentRoutes(group, db, store)

	accountRoute.AccountRoutes(group, db)
	areaRoute.AreaAdminRoutes(group, db)
	categoryRoute.CategoryAdminRoutes(group, db)
}

// CCHRoutes: /api/cch — persetujuan final + tanda tangan.
func CCHRoutes(api fiber.Router, db *gorm.DB, store storage.BlobStore) {
	group := api.Group("/cch",
		authMw.AuthMiddleware(db),
		authMw.OnlyRolesSlice(constants.RoleErrorCCH("review dokumen"), constants.CCHOnly),
	)

	docRoute.ReviewerDocumentRoutes(group, db, store)
	docRoute.SignerDocumentRoutes(group, db, store)
	areaRoute.AreaPublicRoutes(group, db)
	categoryRoute.CategoryPublicRoutes(group, db)
}
