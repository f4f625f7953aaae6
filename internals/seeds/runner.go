package seeds

import (
	"gorm.io/gorm"

	organization "memoku_backend/internals/seeds/organization"
	users "memoku_backend/internals/seeds/users"
)

// RunAllSeeds mengisi master data awal. Urutan penting:
// area dulu, baru user (user amo_area/amo_region merujuk area lewat nama).
func RunAllSeeds(db *gorm.DB) {

	//* Organization
	organization.SeedAreasFromJSON(db, "internals/seeds/organization/data_areas.json")
	organization.SeedCategoriesFromJSON(db, "internals/seeds/organization/data_categories.json")

	//* User
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
