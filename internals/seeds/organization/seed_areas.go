package organization

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"memoku_backend/internals/features/organization/areas/model"
)

type AreaSeed struct {
	AreaName string `json:"area_name"`
}

func SeedAreasFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file area:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []AreaSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.AreaModel
		if err := db.Where("area_name = ?", data.AreaName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Area '%s' sudah ada, dilewati.", data.AreaName)
			continue
		}

		area := model.AreaModel{AreaName: data.AreaName}
		if err := db.Create(&area).Error; err != nil {
			log.Printf("❌ Gagal insert area '%s': %v", data.AreaName, err)
		} else {
			log.Printf("✅ Berhasil insert area '%s'", data.AreaName)
		}
	}
}
