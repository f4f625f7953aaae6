package model

import (
	"time"

	"github.com/google/uuid"
)

// AreaModel: unit geografis/organisasi pemilik dokumen.
type AreaModel struct {
	AreaID   uuid.UUID `gorm:"column:area_id;type:uuid;default:gen_random_uuid();primaryKey" json:"area_id"`
	AreaName string    `gorm:"column:area_name;size:100;unique;not null" json:"area_name"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AreaModel) TableName() string {
	return "areas"
}
