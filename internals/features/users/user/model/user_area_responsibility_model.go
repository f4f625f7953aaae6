package model

import (
	"time"

	"github.com/google/uuid"

	areaModel "memoku_backend/internals/features/organization/areas/model"
)

// UserAreaResponsibilityModel: join supervisor (amo_region) × area.
// Unik per pasangan; di-replace penuh setiap update akun.
type UserAreaResponsibilityModel struct {
	UserAreaResponsibilityID     uuid.UUID `gorm:"column:user_area_responsibility_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_area_responsibility_id"`
	UserAreaResponsibilityUserID uuid.UUID `gorm:"column:user_area_responsibility_user_id;type:uuid;not null;uniqueIndex:uq_user_area_responsibility" json:"user_area_responsibility_user_id"`
	UserAreaResponsibilityAreaID uuid.UUID `gorm:"column:user_area_responsibility_area_id;type:uuid;not null;uniqueIndex:uq_user_area_responsibility" json:"user_area_responsibility_area_id"`

	Area *areaModel.AreaModel `gorm:"foreignKey:UserAreaResponsibilityAreaID;references:AreaID;constraint:OnDelete:CASCADE" json:"area,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserAreaResponsibilityModel) TableName() string {
	return "user_area_responsibilities"
}
