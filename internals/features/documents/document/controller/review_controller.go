package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"memoku_backend/internals/features/documents/document/dto"
	"memoku_backend/internals/features/documents/document/model"
	"memoku_backend/internals/features/documents/workflow"
	helper "memoku_backend/internals/helpers"
)

// ReviewController: antrian review & keputusan status untuk
// AMO Region, MO, dan CCH.
type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// List menampilkan dokumen yang terlihat oleh reviewer sesuai rolenya.
// AMO Region hanya melihat area tanggung jawabnya; MO dan CCH melihat
// semua area. Status yang tampil dibatasi workflow.VisibleStatuses.
func (ctrl *ReviewController) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := currentRole(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.DocumentModel{})
	q = scopeForRole(ctrl.DB, q, role, userID)

	if status := c.Query("status"); status != "" {
		if !workflow.IsValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal")
		}
		if !workflow.IsVisibleTo(role, status) {
			return helper.JsonError(c, fiber.StatusForbidden, "Status tersebut di luar jangkauan role Anda")
		}
		q = q.Where("document_status = ?", status)
	} else {
		q = q.Where("document_status IN ?", workflow.VisibleStatuses(role))
	}

	if areaID := c.Query("area_id"); areaID != "" {
		q = q.Where("document_area_id = ?", areaID)
	}
	if catID := c.Query("category_id"); catID != "" {
		q = q.Where("document_category_id = ?", catID)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("document_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung dokumen")
	}

	var docs []model.DocumentModel
	if err := q.Preload("Area").Preload("Category").Preload("Uploader").
		Order("updated_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&docs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dokumen")
	}

	docIDs := make([]uuid.UUID, 0, len(docs))
	for i := range docs {
		docIDs = append(docIDs, docs[i].DocumentID)
	}
	resps := dto.NewDocumentResponses(docs)
	applyLatestNotes(resps, latestNotes(ctrl.DB, docIDs))

	return helper.JsonList(c, "ok", resps,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GetByID menampilkan satu dokumen dalam jangkauan reviewer.
func (ctrl *ReviewController) GetByID(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := currentRole(c)

	q := scopeForRole(ctrl.DB, ctrl.DB.Model(&model.DocumentModel{}), role, userID)
	var doc model.DocumentModel
	if err := q.Preload("Area").Preload("Category").Preload("Uploader").
		First(&doc, "document_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}
	if !workflow.IsVisibleTo(role, doc.DocumentStatus) {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}

	resps := []dto.DocumentResponse{dto.NewDocumentResponse(&doc)}
	applyLatestNotes(resps, latestNotes(ctrl.DB, []uuid.UUID{doc.DocumentID}))
	return helper.JsonOK(c, "ok", resps[0])
}

// UpdateStatus mengeksekusi keputusan reviewer (accept / minta revisi).
// Transisi dicek lewat tabel workflow; penulisan memakai guard
// "status masih seperti yang saya baca" supaya keputusan ganda yang
// balapan menghasilkan 409, bukan timpa-menimpa.
func (ctrl *ReviewController) UpdateStatus(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := currentRole(c)

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !workflow.IsValidStatus(req.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal")
	}

	q := scopeForRole(ctrl.DB, ctrl.DB.Model(&model.DocumentModel{}), role, userID)
	var doc model.DocumentModel
	if err := q.First(&doc, "document_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}

	if !workflow.CanTransition(role, doc.DocumentStatus, req.Status) {
		return denyTransition(c, doc.DocumentStatus, req.Status)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.DocumentModel{}).
			Where("document_id = ? AND document_status = ?", doc.DocumentID, doc.DocumentStatus).
			Update("document_status", req.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errReviewConflict
		}
		if req.Notes != "" {
			fb := model.FeedbackModel{
				FeedbackDocumentID: doc.DocumentID,
				FeedbackUserID:     userID,
				FeedbackMessage:    req.Notes,
			}
			if err := tx.Create(&fb).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errReviewConflict) {
		return helper.JsonError(c, fiber.StatusConflict, "Dokumen sudah diputuskan reviewer lain, muat ulang")
	}
	if err != nil {
		log.Println("[ERROR] gagal memperbarui status dokumen:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status")
	}

	doc.DocumentStatus = req.Status
	return helper.JsonUpdated(c, "Status dokumen berhasil diperbarui", dto.NewDocumentResponse(&doc))
}

// Statistics menghitung jumlah dokumen per status dalam jangkauan role.
func (ctrl *ReviewController) Statistics(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := currentRole(c)

	type row struct {
		Status string `gorm:"column:document_status"`
		Total  int64  `gorm:"column:total"`
	}
	var rows []row

	q := scopeForRole(ctrl.DB, ctrl.DB.Model(&model.DocumentModel{}), role, userID)
	if err := q.Select("document_status, COUNT(*) AS total").
		Group("document_status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	// Semua status visible tampil, termasuk yang nol.
	counts := map[string]int64{}
	for _, s := range workflow.VisibleStatuses(role) {
		counts[s] = 0
	}
	for _, r := range rows {
		if _, ok := counts[r.Status]; ok {
			counts[r.Status] = r.Total
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{"counts": counts})
}
