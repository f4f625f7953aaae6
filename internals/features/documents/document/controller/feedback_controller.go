package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"memoku_backend/internals/features/documents/document/dto"
	"memoku_backend/internals/features/documents/document/model"
	"memoku_backend/internals/features/documents/workflow"
	helper "memoku_backend/internals/helpers"
)

// FeedbackController membaca riwayat catatan review sebuah dokumen.
// Catatan hanya ditulis lewat keputusan review (append-only), jadi
// controller ini murni read.
type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// ListByDocument menampilkan feedback sebuah dokumen, terbaru dulu.
// Catatan paling atas adalah "catatan terbaru" yang dilihat pengunggah.
func (ctrl *FeedbackController) ListByDocument(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := currentRole(c)
	paging := helper.ResolvePaging(c, 20, 100)

	// Akses feedback mengikuti akses dokumennya.
	q := scopeForRole(ctrl.DB, ctrl.DB.Model(&model.DocumentModel{}), role, userID)
	var doc model.DocumentModel
	if err := q.First(&doc, "document_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}
	if !workflow.IsVisibleTo(role, doc.DocumentStatus) {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}

	var total int64
	base := ctrl.DB.Model(&model.FeedbackModel{}).
		Where("feedback_document_id = ?", doc.DocumentID)
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung feedback")
	}

	var items []model.FeedbackModel
	if err := base.Preload("User").
		Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}

	resp := make([]dto.FeedbackResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.NewFeedbackResponse(&items[i]))
	}
	return helper.JsonList(c, "ok", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
