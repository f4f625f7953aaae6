package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"memoku_backend/internals/constants"
	"memoku_backend/internals/features/documents/document/model"
	"memoku_backend/internals/features/documents/workflow"
	helper "memoku_backend/internals/helpers"
	"memoku_backend/internals/helpers/storage"
)

// FileController menyajikan isi file dokumen (download & preview inline).
type FileController struct {
	DB    *gorm.DB
	Store storage.BlobStore
}

func NewFileController(db *gorm.DB, store storage.BlobStore) *FileController {
	return &FileController{DB: db, Store: store}
}

// loadAccessible memuat dokumen dan memastikan requester berhak melihatnya.
func (ctrl *FileController) loadAccessible(c *fiber.Ctx) (*model.DocumentModel, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := currentRole(c)

	q := scopeForRole(ctrl.DB, ctrl.DB.Model(&model.DocumentModel{}), role, userID)
	var doc model.DocumentModel
	if err := q.First(&doc, "document_id = ?", c.Params("id")).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}
	if !workflow.IsVisibleTo(role, doc.DocumentStatus) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
	}
	return &doc, nil
}

func (ctrl *FileController) stream(c *fiber.Ctx, doc *model.DocumentModel, disposition string) error {
	rc, err := ctrl.Store.Open(c.Context(), doc.DocumentFileKey)
	if err != nil {
		log.Println("[ERROR] gagal membuka file dokumen:", doc.DocumentFileKey, err)
		return helper.JsonError(c, fiber.StatusNotFound, "File dokumen tidak ditemukan")
	}

	mime := doc.DocumentFileMime
	if mime == "" {
		mime = constants.ContentTypeFromExt(doc.DocumentFileName)
	}
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, disposition+`; filename="`+storage.SanitizeFilename(doc.DocumentFileName)+`"`)
	if doc.DocumentFileSize > 0 {
		c.Set(fiber.HeaderContentLength, strconv.FormatInt(doc.DocumentFileSize, 10))
		return c.SendStream(rc, int(doc.DocumentFileSize))
	}
	return c.SendStream(rc)
}

// Download mengirim PDF sebagai attachment.
func (ctrl *FileController) Download(c *fiber.Ctx) error {
	doc, err := ctrl.loadAccessible(c)
	if err != nil {
		return err
	}
	return ctrl.stream(c, doc, "attachment")
}

// Preview mengirim PDF inline untuk viewer di FE.
func (ctrl *FileController) Preview(c *fiber.Ctx) error {
	doc, err := ctrl.loadAccessible(c)
	if err != nil {
		return err
	}
	return ctrl.stream(c, doc, "inline")
}

// Signature mengirim gambar tanda tangan (PNG hasil normalisasi) bila ada.
func (ctrl *FileController) Signature(c *fiber.Ctx) error {
	doc, err := ctrl.loadAccessible(c)
	if err != nil {
		return err
	}
	if doc.DocumentSignatureKey == nil || *doc.DocumentSignatureKey == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumen belum memiliki tanda tangan")
	}
	rc, err := ctrl.Store.Open(c.Context(), *doc.DocumentSignatureKey)
	if err != nil {
		log.Println("[ERROR] gagal membuka file tanda tangan:", *doc.DocumentSignatureKey, err)
		return helper.JsonError(c, fiber.StatusNotFound, "File tanda tangan tidak ditemukan")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="signature.png"`)
	return c.SendStream(rc)
}
