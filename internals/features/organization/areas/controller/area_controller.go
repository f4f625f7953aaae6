package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "memoku_backend/internals/features/organization/areas/dto"
	model "memoku_backend/internals/features/organization/areas/model"
	helper "memoku_backend/internals/helpers"
)

var validate = validator.New()

type AreaController struct {
	DB *gorm.DB
}

func NewAreaController(db *gorm.DB) *AreaController {
	return &AreaController{DB: db}
}

func (ctrl *AreaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AreaModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("area_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count areas:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data area")
	}

	var areas []model.AreaModel
	if err := q.Order("area_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&areas).Error; err != nil {
		log.Println("[ERROR] list areas:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data area")
	}

	return helper.JsonList(c, "ok", areas,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *AreaController) Create(c *fiber.Ctx) error {
	var req dto.AreaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	area := model.AreaModel{AreaName: req.AreaName}
	if err := ctrl.DB.Create(&area).Error; err != nil {
		log.Println("[ERROR] create area:", err)
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama area sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat area")
	}
	return helper.JsonCreated(c, "Area berhasil dibuat", area)
}

func (ctrl *AreaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.AreaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.AreaModel{}).
		Where("area_id = ?", id).
		Update("area_name", req.AreaName)
	if res.Error != nil {
		log.Println("[ERROR] update area:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui area")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Area tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Area berhasil diperbarui", fiber.Map{"area_id": id})
}

// Delete area → dokumen, user, dan responsibilities di bawahnya ikut
// terhapus via cascade FK.
func (ctrl *AreaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var area model.AreaModel
	if err := ctrl.DB.Where("area_id = ?", id).First(&area).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Area tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data area")
	}

	if err := ctrl.DB.Delete(&area).Error; err != nil {
		log.Println("[ERROR] delete area:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus area")
	}
	return helper.JsonDeleted(c, "Area berhasil dihapus", fiber.Map{"area_id": id})
}
