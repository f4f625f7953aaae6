package users

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	areaModel "memoku_backend/internals/features/organization/areas/model"
	authHelper "memoku_backend/internals/features/users/auth/helper"
	"memoku_backend/internals/features/users/user/model"
)

// UserSeed: area dirujuk lewat nama supaya file seed tidak perlu tahu UUID.
type UserSeed struct {
	UserName  string   `json:"user_name"`
	FullName  string   `json:"full_name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	AreaName  string   `json:"area_name,omitempty"`  // amo_area
	AreaNames []string `json:"area_names,omitempty"` // amo_region
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		hashed, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			UserName:     data.UserName,
			UserFullName: data.FullName,
			UserEmail:    data.Email,
			UserPassword: hashed,
			UserRole:     data.Role,
			UserIsActive: true,
		}

		if data.AreaName != "" {
			var area areaModel.AreaModel
			if err := db.Where("area_name = ?", data.AreaName).First(&area).Error; err != nil {
				log.Printf("❌ Area '%s' belum ada, user '%s' dilewati.", data.AreaName, data.Email)
				continue
			}
			newUser.UserAreaID = &area.AreaID
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ Berhasil insert user '%s'", data.Email)

		for _, areaName := range data.AreaNames {
			var area areaModel.AreaModel
			if err := db.Where("area_name = ?", areaName).First(&area).Error; err != nil {
				log.Printf("❌ Area '%s' belum ada, responsibility dilewati.", areaName)
				continue
			}
			resp := model.UserAreaResponsibilityModel{
				UserAreaResponsibilityUserID: newUser.UserID,
				UserAreaResponsibilityAreaID: area.AreaID,
			}
			if err := db.Create(&resp).Error; err != nil {
				log.Printf("❌ Gagal insert responsibility '%s' → '%s': %v", data.Email, areaName, err)
			}
		}
	}
}
