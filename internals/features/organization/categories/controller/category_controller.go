package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "memoku_backend/internals/features/organization/categories/dto"
	model "memoku_backend/internals/features/organization/categories/model"
	helper "memoku_backend/internals/helpers"
)

var validate = validator.New()

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

func (ctrl *CategoryController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CategoryModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("category_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count categories:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kategori")
	}

	var categories []model.CategoryModel
	if err := q.Order("category_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&categories).Error; err != nil {
		log.Println("[ERROR] list categories:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kategori")
	}

	return helper.JsonList(c, "ok", categories,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	category := model.CategoryModel{CategoryName: req.CategoryName}
	if err := ctrl.DB.Create(&category).Error; err != nil {
		log.Println("[ERROR] create category:", err)
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kategori sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}
	return helper.JsonCreated(c, "Kategori berhasil dibuat", category)
}

func (ctrl *CategoryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.CategoryModel{}).
		Where("category_id = ?", id).
		Update("category_name", req.CategoryName)
	if res.Error != nil {
		log.Println("[ERROR] update category:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Kategori berhasil diperbarui", fiber.Map{"category_id": id})
}

func (ctrl *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var category model.CategoryModel
	if err := ctrl.DB.Where("category_id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kategori")
	}

	if err := ctrl.DB.Delete(&category).Error; err != nil {
		log.Println("[ERROR] delete category:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	return helper.JsonDeleted(c, "Kategori berhasil dihapus", fiber.Map{"category_id": id})
}
