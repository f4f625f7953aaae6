package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "memoku_backend/internals/features/users/auth/route"
	"memoku_backend/internals/helpers/storage"
	rateLimiter "memoku_backend/internals/middlewares"
	routeDetails "memoku_backend/internals/route/details"
)

// SetupRoutes memasang seluruh rute API. Blob store dibuat sekali di sini
// dan dibagikan ke semua controller yang menyentuh file.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store, err := storage.NewFromEnv()
	if err != nil {
		log.Fatalln("❌ Gagal menyiapkan blob store:", err)
	}

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== ROLE GROUPS =====================
	api := app.Group("/api", rateLimiter.GlobalRateLimiter())

	log.Println("[INFO] Setting up AMO Area group...")
	routeDetails.AmoAreaRoutes(api, db, store)

	log.Println("[INFO] Setting up AMO Region group...")
	routeDetails.AmoRegionRoutes(api, db, store)

	log.Println("[INFO] Setting up MO group...")
	routeDetails.MORoutes(api, db, store)

	log.Println("[INFO] Setting up CCH group...")
	routeDetails.CCHRoutes(api, db, store)
}
