package controller

import (
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"memoku_backend/internals/constants"
	"memoku_backend/internals/features/documents/document/dto"
	"memoku_backend/internals/features/documents/document/model"
	"memoku_backend/internals/features/documents/workflow"
	userModel "memoku_backend/internals/features/users/user/model"
	helper "memoku_backend/internals/helpers"
	"memoku_backend/internals/helpers/storage"
)

// DocumentController menangani operasi dokumen milik AMO Area
// (unggah, revisi, daftar dokumen sendiri).
type DocumentController struct {
	DB    *gorm.DB
	Store storage.BlobStore
}

func NewDocumentController(db *gorm.DB, store storage.BlobStore) *DocumentController {
	return &DocumentController{DB: db, Store: store}
}

func validatePDFUpload(c *fiber.Ctx) (*multipart.FileHeader, map[string][]string) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, map[string][]string{"file": {"File wajib diunggah"}}
	}
	if fh.Size > MaxDocumentBytes {
		return nil, map[string][]string{"file": {"Ukuran file maksimal 10MB"}}
	}
	if !constants.IsPDFExt(fh.Filename) {
		return nil, map[string][]string{"file": {"File harus berupa PDF"}}
	}
	if err := sniffPDF(fh); err != nil {
		return nil, map[string][]string{"file": {err.Error()}}
	}
	return fh, nil
}

// Upload membuat dokumen MEMO baru dari form multipart.
// File disimpan dulu ke blob store, baris DB dibuat sesudahnya;
// kalau insert gagal, file yang terlanjur tersimpan dihapus lagi.
func (ctrl *DocumentController) Upload(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if fieldErrs := req.Resolve(); len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}
	areaID, _ := uuid.Parse(req.AreaID)
	categoryID, _ := uuid.Parse(req.CategoryID)

	fh, fieldErrs := validatePDFUpload(c)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	// Area dokumen harus sama dengan area si pengunggah.
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}
	if user.UserAreaID == nil || *user.UserAreaID != areaID {
		return helper.JsonError(c, fiber.StatusForbidden, "Dokumen hanya boleh diunggah untuk area Anda sendiri")
	}

	key, err := ctrl.Store.SaveMultipart(c.Context(), storage.DirDocuments, fh)
	if err != nil {
		log.Println("[ERROR] gagal menyimpan file dokumen:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
	}

	doc := model.DocumentModel{
		DocumentTitle:       req.Judul,
		DocumentPeriodStart: datatypes.Date(req.PeriodStart),
		DocumentPeriodEnd:   datatypes.Date(req.PeriodEnd),
		DocumentStatus:      req.Status,
		DocumentFileName:    fh.Filename,
		DocumentFileKey:     key,
		DocumentFileSize:    fh.Size,
		DocumentFileMime:    "application/pdf",
		DocumentAreaID:      areaID,
		DocumentCategoryID:  categoryID,
		DocumentUserID:      userID,
	}
	if err := ctrl.DB.Create(&doc).Error; err != nil {
		// Kompensasi: insert gagal, file ikut dibuang.
		if delErr := ctrl.Store.Delete(c.Context(), key); delErr != nil {
			log.Println("[WARNING] gagal menghapus file yatim:", key, delErr)
		}
		log.Println("[ERROR] gagal membuat dokumen:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan dokumen")
	}

	return helper.JsonCreated(c, "Dokumen berhasil diunggah", dto.NewDocumentResponse(&doc))
}

// Update merevisi dokumen milik sendiri yang masih Draft atau dalam
// status Revision. Status lama jadi guard pada klausa WHERE supaya dua
// revisi yang balapan tidak saling menimpa.
func (ctrl *DocumentController) Update(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	docID := c.Params("id")

	var doc model.DocumentModel
	if err := ctrl.DB.First(&doc, "document_id = ? AND document_user_id = ?", docID, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}
	if !workflow.EditableByUploader(doc.DocumentStatus) {
		return helper.JsonError(c, fiber.StatusConflict, "Dokumen sedang dalam proses review dan tidak bisa diubah")
	}

	var req dto.UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form tidak valid")
	}
	req.Normalize()
	updates, fieldErrs := req.Updates(doc.DocumentPeriodStart, doc.DocumentPeriodEnd)
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}

	// File baru bersifat opsional pada revisi.
	var newKey string
	oldKey := doc.DocumentFileKey
	if _, err := c.FormFile("file"); err == nil {
		fh, fieldErrs := validatePDFUpload(c)
		if fieldErrs != nil {
			return helper.JsonValidationError(c, fieldErrs)
		}
		savedKey, err := ctrl.Store.SaveMultipart(c.Context(), storage.DirDocuments, fh)
		if err != nil {
			log.Println("[ERROR] gagal menyimpan file dokumen:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
		}
		newKey = savedKey
		updates["document_file_name"] = fh.Filename
		updates["document_file_key"] = newKey
		updates["document_file_size"] = fh.Size
		updates["document_file_mime"] = "application/pdf"
	}

	cleanup := func() {
		if newKey != "" {
			if err := ctrl.Store.Delete(c.Context(), newKey); err != nil {
				log.Println("[WARNING] gagal menghapus file yatim:", newKey, err)
			}
		}
	}

	if next, ok := updates["document_status"].(string); ok && next != doc.DocumentStatus {
		if !workflow.CanTransition(currentRole(c), doc.DocumentStatus, next) {
			cleanup()
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Perubahan status tidak diizinkan")
		}
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan yang dikirim")
	}

	res := ctrl.DB.Model(&model.DocumentModel{}).
		Where("document_id = ? AND document_status = ?", doc.DocumentID, doc.DocumentStatus).
		Updates(updates)
	if res.Error != nil {
		cleanup()
		log.Println("[ERROR] gagal memperbarui dokumen:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui dokumen")
	}
	if res.RowsAffected == 0 {
		cleanup()
		return helper.JsonError(c, fiber.StatusConflict, "Dokumen sudah berubah, muat ulang lalu coba lagi")
	}
	if newKey != "" && oldKey != "" {
		if err := ctrl.Store.Delete(c.Context(), oldKey); err != nil {
			log.Println("[WARNING] gagal menghapus file lama:", oldKey, err)
		}
	}

	if err := ctrl.DB.Preload("Area").Preload("Category").
		First(&doc, "document_id = ?", doc.DocumentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat dokumen")
	}
	return helper.JsonUpdated(c, "Dokumen berhasil diperbarui", dto.NewDocumentResponse(&doc))
}

// ListMine menampilkan dokumen milik pengunggah, dengan filter opsional.
func (ctrl *DocumentController) ListMine(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.DocumentModel{}).
		Where("document_user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		if !workflow.IsValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal")
		}
		q = q.Where("document_status = ?", status)
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
	if err := q.Preload("Area").Preload("Category").
		Order("created_at DESC").
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

// GetByID menampilkan satu dokumen milik sendiri beserta relasinya.
func (ctrl *DocumentController) GetByID(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var doc model.DocumentModel
	if err := ctrl.DB.Preload("Area").Preload("Category").Preload("Uploader").
		First(&doc, "document_id = ? AND document_user_id = ?", c.Params("id"), userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}

	resps := []dto.DocumentResponse{dto.NewDocumentResponse(&doc)}
	applyLatestNotes(resps, latestNotes(ctrl.DB, []uuid.UUID{doc.DocumentID}))
	return helper.JsonOK(c, "ok", resps[0])
}
