package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"memoku_backend/internals/constants"
	userModel "memoku_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateAccountRequest — create user oleh MO.
//
// Bentuk "yurisdiksi" bergantung role (tagged variant):
//   - amo_area   → area_id wajib, area_ids harus kosong
//   - amo_region → area_ids (boleh kosong), area_id harus kosong
//   - mo / cch   → dua-duanya kosong
type CreateAccountRequest struct {
	UserName string      `json:"user_name" validate:"required,min=3,max=50"`
	FullName string      `json:"full_name" validate:"required,min=3,max=100"`
	Email    string      `json:"email" validate:"required,email,max=255"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     string      `json:"role" validate:"required,oneof=amo_area amo_region mo cch"`
	AreaID   *uuid.UUID  `json:"area_id,omitempty"`
	AreaIDs  []uuid.UUID `json:"area_ids,omitempty"`
	IsActive *bool       `json:"is_active,omitempty"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateAccountRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(r.Role)
}

// ValidateJurisdiction menegakkan aturan varian role ↔ area.
func (r *CreateAccountRequest) ValidateJurisdiction() error {
	return validateJurisdiction(r.Role, r.AreaID, r.AreaIDs)
}

// ToModel — konversi ke model (hash password di controller!)
func (r *CreateAccountRequest) ToModel() *userModel.UserModel {
	m := &userModel.UserModel{
		UserName:     r.UserName,
		UserFullName: r.FullName,
		UserEmail:    r.Email,
		UserPassword: r.Password, // hash di controller
		UserRole:     r.Role,
		UserIsActive: true,
	}
	if r.Role == constants.RoleAmoArea {
		m.UserAreaID = r.AreaID
	}
	if r.IsActive != nil {
		m.UserIsActive = *r.IsActive
	}
	return m
}

// UpdateAccountRequest — partial update (pointer untuk bedakan omit vs null).
// area_ids bila dikirim akan MENGGANTI seluruh responsibilities (bukan diff).
type UpdateAccountRequest struct {
	UserName *string      `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	FullName *string      `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Email    *string      `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string      `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     *string      `json:"role,omitempty" validate:"omitempty,oneof=amo_area amo_region mo cch"`
	AreaID   *uuid.UUID   `json:"area_id,omitempty"`
	AreaIDs  *[]uuid.UUID `json:"area_ids,omitempty"`
	IsActive *bool        `json:"is_active,omitempty"`
}

func (r *UpdateAccountRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Role != nil {
		v := strings.TrimSpace(*r.Role)
		r.Role = &v
	}
}

// ValidateJurisdiction memvalidasi kombinasi field terhadap role efektif
// (role baru bila dikirim, selain itu role lama).
func (r *UpdateAccountRequest) ValidateJurisdiction(currentRole string) error {
	role := currentRole
	if r.Role != nil {
		role = *r.Role
	}
	var ids []uuid.UUID
	if r.AreaIDs != nil {
		ids = *r.AreaIDs
	}
	return validateJurisdiction(role, r.AreaID, ids)
}

func validateJurisdiction(role string, areaID *uuid.UUID, areaIDs []uuid.UUID) error {
	switch role {
	case constants.RoleAmoArea:
		if areaID == nil || *areaID == uuid.Nil {
			return fmt.Errorf("area_id wajib diisi untuk role amo_area")
		}
		if len(areaIDs) > 0 {
			return fmt.Errorf("area_ids hanya untuk role amo_region")
		}
	case constants.RoleAmoRegion:
		if areaID != nil {
			return fmt.Errorf("area_id hanya untuk role amo_area")
		}
		seen := map[uuid.UUID]bool{}
		for _, id := range areaIDs {
			if id == uuid.Nil {
				return fmt.Errorf("area_ids memuat UUID kosong")
			}
			if seen[id] {
				return fmt.Errorf("area_ids memuat duplikat")
			}
			seen[id] = true
		}
	case constants.RoleMO, constants.RoleCCH:
		if areaID != nil || len(areaIDs) > 0 {
			return fmt.Errorf("role %s tidak memakai area", role)
		}
	default:
		return fmt.Errorf("role tidak dikenal")
	}
	return nil
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type AccountResponse struct {
	UserID   uuid.UUID   `json:"user_id"`
	UserName string      `json:"user_name"`
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Role     string      `json:"role"`
	AreaID   *uuid.UUID  `json:"area_id,omitempty"`
	AreaName *string     `json:"area_name,omitempty"`
	AreaIDs  []uuid.UUID `json:"area_ids,omitempty"`
	IsActive bool        `json:"is_active"`
}

func NewAccountResponse(u *userModel.UserModel) AccountResponse {
	resp := AccountResponse{
		UserID:   u.UserID,
		UserName: u.UserName,
		FullName: u.UserFullName,
		Email:    u.UserEmail,
		Role:     u.UserRole,
		AreaID:   u.UserAreaID,
		IsActive: u.UserIsActive,
	}
	if u.Area != nil {
		resp.AreaName = &u.Area.AreaName
	}
	if len(u.Responsibilities) > 0 {
		resp.AreaIDs = u.ResponsibilityAreaIDs()
	}
	return resp
}
