package controller

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"memoku_backend/internals/constants"
	"memoku_backend/internals/features/documents/document/dto"
	"memoku_backend/internals/features/documents/document/model"
	userModel "memoku_backend/internals/features/users/user/model"
	helper "memoku_backend/internals/helpers"
)

var validate = validator.New()

// errReviewConflict menandai update berguard yang kalah balapan.
var errReviewConflict = errors.New("document status changed concurrently")

// Batas upload dokumen MEMO.
const MaxDocumentBytes = 10 * 1024 * 1024

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	s, ok := c.Locals("user_id").(string)
	if !ok || s == "" {
		return uuid.Nil, fmt.Errorf("unauthorized")
	}
	return uuid.Parse(s)
}

func currentRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

// regionAreaSubquery: area yang boleh dilihat seorang AMO Region.
func regionAreaSubquery(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&userModel.UserAreaResponsibilityModel{}).
		Select("user_area_responsibility_area_id").
		Where("user_area_responsibility_user_id = ?", userID)
}

// scopeForRole membatasi query dokumen sesuai yurisdiksi role.
//   - amo_area   → hanya dokumen miliknya sendiri
//   - amo_region → area responsibilities + pengunggah ber-role amo_area
//   - mo / cch   → semua area
func scopeForRole(db *gorm.DB, q *gorm.DB, role string, userID uuid.UUID) *gorm.DB {
	switch role {
	case constants.RoleAmoArea:
		return q.Where("document_user_id = ?", userID)
	case constants.RoleAmoRegion:
		return q.Where("document_area_id IN (?)", regionAreaSubquery(db, userID)).
			Where("document_user_id IN (?)", db.Model(&userModel.UserModel{}).
				Select("user_id").Where("user_role = ?", constants.RoleAmoArea))
	default:
		return q
	}
}

// denyTransition: reviewer bertindak di luar tahapnya. Ini masalah
// wewenang terhadap status dokumen saat ini, bukan payload yang rusak.
func denyTransition(c *fiber.Ctx, from, to string) error {
	return helper.JsonError(c, fiber.StatusForbidden,
		"Transisi dari \""+from+"\" ke \""+to+"\" tidak diizinkan untuk role Anda")
}

// latestNotes mengambil catatan feedback terbaru per dokumen dalam satu
// query (DISTINCT ON milik Postgres). Gagal query tidak menggagalkan
// response list; catatan hanya tidak terisi.
func latestNotes(db *gorm.DB, docIDs []uuid.UUID) map[uuid.UUID]string {
	notes := make(map[uuid.UUID]string, len(docIDs))
	if len(docIDs) == 0 {
		return notes
	}

	var rows []struct {
		FeedbackDocumentID uuid.UUID
		FeedbackMessage    string
	}
	if err := db.Model(&model.FeedbackModel{}).
		Select("DISTINCT ON (feedback_document_id) feedback_document_id, feedback_message").
		Where("feedback_document_id IN ?", docIDs).
		Order("feedback_document_id, created_at DESC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] gagal mengambil catatan feedback terbaru:", err)
		return notes
	}

	for _, row := range rows {
		notes[row.FeedbackDocumentID] = row.FeedbackMessage
	}
	return notes
}

// applyLatestNotes menempelkan catatan terbaru ke response dokumen.
func applyLatestNotes(resps []dto.DocumentResponse, notes map[uuid.UUID]string) {
	for i := range resps {
		if note, ok := notes[resps[i].DocumentID]; ok {
			msg := note
			resps[i].LatestNote = &msg
		}
	}
}

// sniffPDF memastikan isi file benar-benar PDF, bukan sekadar ekstensi.
func sniffPDF(fh *multipart.FileHeader) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	buf := make([]byte, 512)
	n, _ := src.Read(buf)
	ct := http.DetectContentType(buf[:n])
	if !strings.HasPrefix(ct, "application/pdf") {
		return fmt.Errorf("file harus berupa PDF")
	}
	return nil
}
