package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"memoku_backend/internals/constants"
	dto "memoku_backend/internals/features/users/account/dto"
	authHelper "memoku_backend/internals/features/users/auth/helper"
	userModel "memoku_backend/internals/features/users/user/model"
	helper "memoku_backend/internals/helpers"
)

var validate = validator.New()

type AccountController struct {
	DB *gorm.DB
}

func NewAccountController(db *gorm.DB) *AccountController {
	return &AccountController{DB: db}
}

// 📋 List akun dengan filter role/area/pencarian nama + pagination.
func (ctrl *AccountController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&userModel.UserModel{}).
		Preload("Area").
		Preload("Responsibilities")

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "role filter tidak dikenal")
		}
		q = q.Where("user_role = ?", role)
	}
	if areaID := strings.TrimSpace(c.Query("area_id")); areaID != "" {
		id, err := uuid.Parse(areaID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "area_id tidak valid")
		}
		q = q.Where("user_area_id = ?", id)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR user_full_name ILIKE ? OR user_email ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count accounts:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data akun")
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] list accounts:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data akun")
	}

	resp := make([]dto.AccountResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewAccountResponse(&users[i]))
	}

	return helper.JsonList(c, "ok", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔎 Detail akun.
func (ctrl *AccountController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.
		Preload("Area").
		Preload("Responsibilities.Area").
		Where("user_id = ?", id).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data akun")
	}

	return helper.JsonOK(c, "ok", dto.NewAccountResponse(&user))
}

// ➕ Create akun baru + responsibilities dalam SATU transaksi.
func (ctrl *AccountController) Create(c *fiber.Ctx) error {
	var req dto.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ValidateJurisdiction(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"role": {err.Error()}})
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := req.ToModel()
	user.UserPassword = hashed

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if user.UserRole == constants.RoleAmoRegion && len(req.AreaIDs) > 0 {
			return insertResponsibilities(tx, user.UserID, req.AreaIDs)
		}
		return nil
	}); err != nil {
		log.Println("[ERROR] create account:", err)
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Akun berhasil dibuat", dto.NewAccountResponse(user))
}

// ✏️ Update akun. Bila area_ids dikirim, seluruh responsibilities
// di-replace (delete-and-reinsert) dalam transaksi yang sama.
func (ctrl *AccountController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data akun")
	}

	if err := req.ValidateJurisdiction(user.UserRole); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"role": {err.Error()}})
	}

	effectiveRole := user.UserRole
	if req.Role != nil {
		effectiveRole = *req.Role
	}

	updates := map[string]any{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.FullName != nil {
		updates["user_full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["user_email"] = *req.Email
	}
	if req.Role != nil {
		updates["user_role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["user_is_active"] = *req.IsActive
	}
	if req.Password != nil {
		hashed, err := authHelper.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
		}
		updates["user_password"] = hashed
	}

	// area tunggal hanya berlaku untuk amo_area
	switch effectiveRole {
	case constants.RoleAmoArea:
		if req.AreaID != nil {
			updates["user_area_id"] = *req.AreaID
		}
	default:
		updates["user_area_id"] = nil
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_id = ?", id).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		// replace penuh bila area_ids dikirim ATAU role keluar dari amo_region
		if req.AreaIDs != nil || (req.Role != nil && *req.Role != constants.RoleAmoRegion) {
			if err := tx.Where("user_area_responsibility_user_id = ?", id).
				Delete(&userModel.UserAreaResponsibilityModel{}).Error; err != nil {
				return err
			}
		}
		if effectiveRole == constants.RoleAmoRegion && req.AreaIDs != nil && len(*req.AreaIDs) > 0 {
			return insertResponsibilities(tx, id, *req.AreaIDs)
		}
		return nil
	}); err != nil {
		log.Println("[ERROR] update account:", err)
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui akun")
	}

	var updated userModel.UserModel
	if err := ctrl.DB.
		Preload("Area").
		Preload("Responsibilities").
		Where("user_id = ?", id).
		First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Akun berhasil diperbarui", nil)
	}
	return helper.JsonUpdated(c, "Akun berhasil diperbarui", dto.NewAccountResponse(&updated))
}

// 🗑 Delete akun. Akun dengan role terlindungi (mo/cch) TIDAK boleh dihapus.
func (ctrl *AccountController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data akun")
	}

	if constants.IsProtectedRole(user.UserRole) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun MO/CCH tidak boleh dihapus")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_area_responsibility_user_id = ?", id).
			Delete(&userModel.UserAreaResponsibilityModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&userModel.UserModel{}, "user_id = ?", id).Error
	}); err != nil {
		log.Println("[ERROR] delete account:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus akun")
	}

	return helper.JsonDeleted(c, "Akun berhasil dihapus", fiber.Map{"user_id": id})
}

func insertResponsibilities(tx *gorm.DB, userID uuid.UUID, areaIDs []uuid.UUID) error {
	rows := make([]userModel.UserAreaResponsibilityModel, 0, len(areaIDs))
	for _, areaID := range areaIDs {
		rows = append(rows, userModel.UserAreaResponsibilityModel{
			UserAreaResponsibilityUserID: userID,
			UserAreaResponsibilityAreaID: areaID,
		})
	}
	return tx.Create(&rows).Error
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
