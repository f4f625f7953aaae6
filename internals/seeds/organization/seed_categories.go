package organization

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"memoku_backend/internals/features/organization/categories/model"
)

type CategorySeed struct {
	CategoryName string `json:"category_name"`
}

func SeedCategoriesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file kategori:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []CategorySeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.CategoryModel
		if err := db.Where("category_name = ?", data.CategoryName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Kategori '%s' sudah ada, dilewati.", data.CategoryName)
			continue
		}

		category := model.CategoryModel{CategoryName: data.CategoryName}
		if err := db.Create(&category).Error; err != nil {
			log.Printf("❌ Gagal insert kategori '%s': %v", data.CategoryName, err)
		} else {
			log.Printf("✅ Berhasil insert kategori '%s'", data.CategoryName)
		}
	}
}
