package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel: klasifikasi dokumen (mis. Hotel, Restoran).
type CategoryModel struct {
	CategoryID   uuid.UUID `gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"category_id"`
	CategoryName string    `gorm:"column:category_name;size:100;unique;not null" json:"category_name"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
