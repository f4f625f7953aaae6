package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"memoku_backend/internals/features/documents/workflow"
)

const dateLayout = "2006-01-02"

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateDocumentRequest — multipart upload MEMO oleh AMO Area.
// Nama field mengikuti form FE lama (judul, periode_*).
type CreateDocumentRequest struct {
	Judul           string `form:"judul" validate:"required,min=3,max=200"`
	PeriodeMulai    string `form:"periode_mulai" validate:"required"`
	PeriodeSelesai  string `form:"periode_selesai" validate:"required"`
	AreaID          string `form:"area_id" validate:"required,uuid"`
	CategoryID      string `form:"category_id" validate:"required,uuid"`
	RequestedStatus string `form:"status"`

	// hasil parse, diisi Resolve()
	PeriodStart time.Time `form:"-"`
	PeriodEnd   time.Time `form:"-"`
	Status      string    `form:"-"`
}

func (r *CreateDocumentRequest) Normalize() {
	r.Judul = strings.TrimSpace(r.Judul)
	r.PeriodeMulai = strings.TrimSpace(r.PeriodeMulai)
	r.PeriodeSelesai = strings.TrimSpace(r.PeriodeSelesai)
	r.RequestedStatus = strings.TrimSpace(r.RequestedStatus)
}

// Resolve memvalidasi tanggal periode dan meng-collapse status upload.
// Selain literal "On Process", status selalu jatuh ke Draft.
func (r *CreateDocumentRequest) Resolve() map[string][]string {
	fieldErrs := map[string][]string{}

	start, err := time.Parse(dateLayout, r.PeriodeMulai)
	if err != nil {
		fieldErrs["periode_mulai"] = append(fieldErrs["periode_mulai"], "format tanggal harus YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, r.PeriodeSelesai)
	if err != nil {
		fieldErrs["periode_selesai"] = append(fieldErrs["periode_selesai"], "format tanggal harus YYYY-MM-DD")
	}
	if len(fieldErrs) == 0 && end.Before(start) {
		fieldErrs["periode_selesai"] = append(fieldErrs["periode_selesai"], "periode_selesai tidak boleh sebelum periode_mulai")
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	r.PeriodStart = start
	r.PeriodEnd = end
	r.Status = workflow.NormalizeRequestedStatus(r.RequestedStatus)
	return nil
}

// UpdateDocumentRequest — edit ulang oleh pengunggah (Draft / Revision by *).
type UpdateDocumentRequest struct {
	Judul           string `form:"judul"`
	PeriodeMulai    string `form:"periode_mulai"`
	PeriodeSelesai  string `form:"periode_selesai"`
	CategoryID      string `form:"category_id"`
	RequestedStatus string `form:"status"`
}

func (r *UpdateDocumentRequest) Normalize() {
	r.Judul = strings.TrimSpace(r.Judul)
	r.PeriodeMulai = strings.TrimSpace(r.PeriodeMulai)
	r.PeriodeSelesai = strings.TrimSpace(r.PeriodeSelesai)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.RequestedStatus = strings.TrimSpace(r.RequestedStatus)
}

// Updates membangun map kolom yang berubah untuk gorm .Updates().
// Field kosong dianggap "tidak diubah". Tanggal yang tidak ikut dikirim
// diambil dari nilai tersimpan, jadi periode dokumen tetap valid walau
// partial update hanya membawa salah satu sisinya. Validasi transisi
// status tetap di controller karena butuh status dokumen saat ini.
func (r *UpdateDocumentRequest) Updates(currentStart, currentEnd datatypes.Date) (map[string]interface{}, map[string][]string) {
	fieldErrs := map[string][]string{}
	updates := map[string]interface{}{}

	if r.Judul != "" {
		if len(r.Judul) < 3 || len(r.Judul) > 200 {
			fieldErrs["judul"] = append(fieldErrs["judul"], "judul harus 3-200 karakter")
		} else {
			updates["document_title"] = r.Judul
		}
	}

	start := time.Time(currentStart)
	end := time.Time(currentEnd)
	dateBroken := false
	if r.PeriodeMulai != "" {
		t, err := time.Parse(dateLayout, r.PeriodeMulai)
		if err != nil {
			fieldErrs["periode_mulai"] = append(fieldErrs["periode_mulai"], "format tanggal harus YYYY-MM-DD")
			dateBroken = true
		} else {
			start = t
			updates["document_period_start"] = datatypes.Date(t)
		}
	}
	if r.PeriodeSelesai != "" {
		t, err := time.Parse(dateLayout, r.PeriodeSelesai)
		if err != nil {
			fieldErrs["periode_selesai"] = append(fieldErrs["periode_selesai"], "format tanggal harus YYYY-MM-DD")
			dateBroken = true
		} else {
			end = t
			updates["document_period_end"] = datatypes.Date(t)
		}
	}
	if !dateBroken && (r.PeriodeMulai != "" || r.PeriodeSelesai != "") && end.Before(start) {
		field := "periode_selesai"
		if r.PeriodeSelesai == "" {
			field = "periode_mulai"
		}
		fieldErrs[field] = append(fieldErrs[field], "periode_selesai tidak boleh sebelum periode_mulai")
	}

	if r.CategoryID != "" {
		id, err := uuid.Parse(r.CategoryID)
		if err != nil {
			fieldErrs["category_id"] = append(fieldErrs["category_id"], "category_id harus UUID")
		} else {
			updates["document_category_id"] = id
		}
	}

	if r.RequestedStatus != "" {
		if !workflow.IsValidStatus(r.RequestedStatus) {
			fieldErrs["status"] = append(fieldErrs["status"], "status tidak dikenal")
		} else {
			updates["document_status"] = r.RequestedStatus
		}
	}

	return updates, fieldErrs
}

// ReviewRequest — keputusan reviewer atas satu dokumen.
type ReviewRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

func (r *ReviewRequest) Normalize() {
	r.Status = strings.TrimSpace(r.Status)
	r.Notes = strings.TrimSpace(r.Notes)
}

// SignatureRequest — penempatan tanda tangan pada halaman PDF.
// Koordinat dalam pixel preview; dimensi preview ikut direkam supaya
// posisi bisa diskalakan ulang saat rendering (di luar sistem ini).
type SignatureRequest struct {
	DocumentID    string  `form:"document_id" validate:"required,uuid"`
	PageNumber    int     `form:"page_number" validate:"required,min=1"`
	X             float64 `form:"x"`
	Y             float64 `form:"y"`
	Width         float64 `form:"width" validate:"required,gt=0"`
	Height        float64 `form:"height" validate:"required,gt=0"`
	PreviewWidth  float64 `form:"preview_width" validate:"required,gt=0"`
	PreviewHeight float64 `form:"preview_height" validate:"required,gt=0"`
}

// ValidatePlacement memastikan kotak tanda tangan berada di dalam preview.
func (r *SignatureRequest) ValidatePlacement() error {
	if r.X < 0 || r.Y < 0 {
		return fmt.Errorf("posisi x/y tidak boleh negatif")
	}
	if r.X+r.Width > r.PreviewWidth || r.Y+r.Height > r.PreviewHeight {
		return fmt.Errorf("kotak tanda tangan keluar dari area preview")
	}
	return nil
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type DocumentResponse struct {
	DocumentID   uuid.UUID `json:"document_id"`
	Title        string    `json:"judul"`
	PeriodStart  string    `json:"periode_mulai"`
	PeriodEnd    string    `json:"periode_selesai"`
	Status       string    `json:"status"`
	FileName     string    `json:"file_name"`
	FileSize     int64     `json:"file_size"`
	FileMime     string    `json:"file_mime"`
	AreaID       uuid.UUID `json:"area_id"`
	AreaName     string    `json:"area_name,omitempty"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	UploaderID   uuid.UUID `json:"uploader_id"`
	UploaderName string    `json:"uploader_name,omitempty"`
	SignedByMO   bool      `json:"signed_by_mo"`
	SignedByCCH  bool      `json:"signed_by_cch"`
	LatestNote   *string   `json:"latest_note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type FeedbackResponse struct {
	FeedbackID uuid.UUID `json:"feedback_id"`
	Message    string    `json:"message"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	AuthorRole string    `json:"author_role,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
