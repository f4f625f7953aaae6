package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "memoku_backend/internals/features/documents/document/controller"
	"memoku_backend/internals/helpers/storage"
	rateLimiter "memoku_backend/internals/middlewares"
)

// AmoAreaDocumentRoutes: operasi dokumen milik pengunggah.
// Dipasang di bawah group yang sudah di-gate role amo_area.
func AmoAreaDocumentRoutes(api fiber.Router, db *gorm.DB, store storage.BlobStore) {
	docCtrl := controller.NewDocumentController(db, store)
	fileCtrl := controller.NewFileController(db, store)
	fbCtrl := controller.NewFeedbackController(db)

	api.Post("/upload-document", rateLimiter.UploadRateLimiter(), docCtrl.Upload)
	api.Get("/documents", docCtrl.ListMine)
	api.Get("/documents/:id", docCtrl.GetByID)
	api.Put("/update-document/:id", rateLimiter.UploadRateLimiter(), docCtrl.Update)
	api.Get("/download-document/:id", fileCtrl.Download)
	api.Get("/preview-document/:id", fileCtrl.Preview)
	api.Get("/document-feedbacks/:id", fbCtrl.ListByDocument)
	api.Get("/document-signature/:id", fileCtrl.Signature)
}

// ReviewerDocumentRoutes: antrean review + keputusan status.
// Dipakai bersama oleh amo_region, mo, dan cch; cakupan data per role
// diputuskan di controller lewat role pada token.
func ReviewerDocumentRoutes(api fiber.Router, db *gorm.DB, store storage.BlobStore) {
	reviewCtrl := controller.NewReviewController(db)
	fileCtrl := controller.NewFileController(db, store)
	fbCtrl := controller.NewFeedbackController(db)

	api.Get("/documents", reviewCtrl.List)
	api.Get("/documents/statistics", reviewCtrl.Statistics)
	api.Get("/documents/:id", reviewCtrl.GetByID)
	api.Put("/update-review-status/:id", reviewCtrl.UpdateStatus)
	api.Get("/download-document/:id", fileCtrl.Download)
	api.Get("/preview-document/:id", fileCtrl.Preview)
	api.Get("/document-feedbacks/:id", fbCtrl.ListByDocument)
	api.Get("/document-signature/:id", fileCtrl.Signature)
}

// SignerDocumentRoutes: penempelan tanda tangan (cch, plus mo).
func SignerDocumentRoutes(api fiber.Router, db *gorm.DB, store storage.BlobStore) {
	sigCtrl := controller.NewSignatureController(db, store)

	api.Post("/upload-signature", rateLimiter.UploadRateLimiter(), sigCtrl.Attach)
	api.Get("/signature-placement/:id", sigCtrl.Detail)
}
