package model

import (
	"time"

	"github.com/google/uuid"

	areaModel "memoku_backend/internals/features/organization/areas/model"
)

// UserModel merepresentasikan tabel users.
//
// Yurisdiksi per role:
//   - amo_area   → tepat satu area (UserAreaID wajib)
//   - amo_region → nol atau lebih area via user_area_responsibilities
//   - mo / cch   → tanpa area
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:50;not null" json:"user_name"`
	UserFullName string    `gorm:"column:user_full_name;size:100;not null" json:"user_full_name"`
	UserEmail    string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;index" json:"user_role"`

	UserAreaID *uuid.UUID           `gorm:"column:user_area_id;type:uuid;index" json:"user_area_id,omitempty"`
	Area       *areaModel.AreaModel `gorm:"foreignKey:UserAreaID;references:AreaID;constraint:OnDelete:CASCADE" json:"area,omitempty"`

	Responsibilities []UserAreaResponsibilityModel `gorm:"foreignKey:UserAreaResponsibilityUserID;references:UserID" json:"responsibilities,omitempty"`

	UserIsActive bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// ResponsibilityAreaIDs mengembalikan daftar area yang diawasi (amo_region).
func (u *UserModel) ResponsibilityAreaIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(u.Responsibilities))
	for _, r := range u.Responsibilities {
		ids = append(ids, r.UserAreaResponsibilityAreaID)
	}
	return ids
}
