package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"memoku_backend/internals/constants"
	"memoku_backend/internals/features/documents/document/dto"
	"memoku_backend/internals/features/documents/document/model"
	"memoku_backend/internals/features/documents/workflow"
	helper "memoku_backend/internals/helpers"
	"memoku_backend/internals/helpers/imagex"
	"memoku_backend/internals/helpers/storage"
)

// SignatureController merekam penempatan tanda tangan pada dokumen yang
// sudah final (Accept by CCH). Gambar dinormalisasi ke PNG, posisinya
// disimpan sebagai metadata; komposit PDF dikerjakan di luar sistem ini.
type SignatureController struct {
	DB    *gorm.DB
	Store storage.BlobStore
}

func NewSignatureController(db *gorm.DB, store storage.BlobStore) *SignatureController {
	return &SignatureController{DB: db, Store: store}
}

// Attach menerima multipart: file gambar tanda tangan + koordinat
// penempatan relatif terhadap preview di FE.
func (ctrl *SignatureController) Attach(c *fiber.Ctx) error {
	if _, err := currentUserID(c); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := currentRole(c)

	var req dto.SignatureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ValidatePlacement(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"placement": {err.Error()}})
	}
	docID, _ := uuid.Parse(req.DocumentID)

	fh, err := c.FormFile("signature")
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"signature": {"Gambar tanda tangan wajib diunggah"}})
	}
	if !constants.IsImageExt(fh.Filename) {
		return helper.JsonValidationError(c, map[string][]string{"signature": {"Tanda tangan harus berupa gambar (png/jpg/webp)"}})
	}

	var doc model.DocumentModel
	if err := ctrl.DB.First(&doc, "document_id = ?", docID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}
	if !workflow.SignatureAllowed(doc.DocumentStatus) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Tanda tangan hanya bisa ditempel setelah dokumen berstatus \""+workflow.StatusAcceptByCCH+"\"")
	}

	// Normalisasi gambar (PNG, sisi terpanjang 1024px).
	png, err := imagex.NormalizeSignature(fh)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"signature": {err.Error()}})
	}

	key, err := ctrl.Store.SaveBytes(c.Context(), storage.DirSignatures,
		imagex.PNGFilename(fh.Filename), png, "image/png")
	if err != nil {
		log.Println("[ERROR] gagal menyimpan tanda tangan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tanda tangan")
	}

	updates := map[string]interface{}{
		"document_signature_key":    key,
		"document_signature_page":   req.PageNumber,
		"document_signature_x":      req.X,
		"document_signature_y":      req.Y,
		"document_signature_width":  req.Width,
		"document_signature_height": req.Height,
		"document_preview_width":    req.PreviewWidth,
		"document_preview_height":   req.PreviewHeight,
	}
	switch role {
	case constants.RoleMO:
		updates["document_signed_by_mo"] = true
	case constants.RoleCCH:
		updates["document_signed_by_cch"] = true
	}

	oldKey := doc.DocumentSignatureKey
	res := ctrl.DB.Model(&model.DocumentModel{}).
		Where("document_id = ? AND document_status = ?", doc.DocumentID, doc.DocumentStatus).
		Updates(updates)
	if res.Error != nil {
		if delErr := ctrl.Store.Delete(c.Context(), key); delErr != nil {
			log.Println("[WARNING] gagal menghapus file yatim:", key, delErr)
		}
		log.Println("[ERROR] gagal menyimpan penempatan tanda tangan:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penempatan tanda tangan")
	}
	if res.RowsAffected == 0 {
		if delErr := ctrl.Store.Delete(c.Context(), key); delErr != nil {
			log.Println("[WARNING] gagal menghapus file yatim:", key, delErr)
		}
		return helper.JsonError(c, fiber.StatusConflict, "Dokumen sudah berubah, muat ulang lalu coba lagi")
	}

	// Tanda tangan lama diganti, filenya dibuang.
	if oldKey != nil && *oldKey != "" && *oldKey != key {
		if err := ctrl.Store.Delete(c.Context(), *oldKey); err != nil {
			log.Println("[WARNING] gagal menghapus tanda tangan lama:", *oldKey, err)
		}
	}

	if err := ctrl.DB.Preload("Area").Preload("Category").
		First(&doc, "document_id = ?", doc.DocumentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat dokumen")
	}
	return helper.JsonUpdated(c, "Tanda tangan berhasil ditempelkan", dto.NewDocumentResponse(&doc))
}

// Detail mengembalikan metadata penempatan tanda tangan sebuah dokumen.
func (ctrl *SignatureController) Detail(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := currentRole(c)

	q := scopeForRole(ctrl.DB, ctrl.DB.Model(&model.DocumentModel{}), role, userID)
	var doc model.DocumentModel
	if err := q.First(&doc, "document_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}
	if doc.DocumentSignatureKey == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen belum memiliki tanda tangan")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"document_id":    doc.DocumentID,
		"page_number":    doc.DocumentSignaturePage,
		"x":              doc.DocumentSignatureX,
		"y":              doc.DocumentSignatureY,
		"width":          doc.DocumentSignatureWidth,
		"height":         doc.DocumentSignatureHeight,
		"preview_width":  doc.DocumentPreviewWidth,
		"preview_height": doc.DocumentPreviewHeight,
		"signed_by_mo":   doc.DocumentSignedByMO,
		"signed_by_cch":  doc.DocumentSignedByCCH,
	})
}
