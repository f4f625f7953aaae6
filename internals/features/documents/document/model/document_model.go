package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	areaModel "memoku_backend/internals/features/organization/areas/model"
	categoryModel "memoku_backend/internals/features/organization/categories/model"
	userModel "memoku_backend/internals/features/users/user/model"
)

// DocumentModel: entitas pusat alur persetujuan MEMO.
//
// Catatan berjalan tidak disimpan di sini — riwayat catatan review hidup di
// feedbacks (append-only); "catatan terbaru" = feedback paling baru.
type DocumentModel struct {
	DocumentID          uuid.UUID      `gorm:"column:document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"document_id"`
	DocumentTitle       string         `gorm:"column:document_title;size:200;not null" json:"document_title"`
	DocumentPeriodStart datatypes.Date `gorm:"column:document_period_start;not null" json:"document_period_start"`
	DocumentPeriodEnd   datatypes.Date `gorm:"column:document_period_end;not null" json:"document_period_end"`

	// Salah satu dari workflow.AllStatuses; divalidasi sebelum ditulis.
	DocumentStatus string `gorm:"column:document_status;type:varchar(30);not null;index" json:"document_status"`

	// File tersimpan
	DocumentFileName string `gorm:"column:document_file_name;size:255;not null" json:"document_file_name"`
	DocumentFileKey  string `gorm:"column:document_file_key;size:500;not null" json:"document_file_key"`
	DocumentFileSize int64  `gorm:"column:document_file_size;not null" json:"document_file_size"`
	DocumentFileMime string `gorm:"column:document_file_mime;size:100;not null" json:"document_file_mime"`

	// Penempatan tanda tangan (koordinat pixel preview saat capture).
	// Komposit PDF final TIDAK dibuat di sistem ini; hanya metadata posisi.
	DocumentSignatureKey    *string  `gorm:"column:document_signature_key;size:500" json:"document_signature_key,omitempty"`
	DocumentSignaturePage   *int     `gorm:"column:document_signature_page" json:"document_signature_page,omitempty"`
	DocumentSignatureX      *float64 `gorm:"column:document_signature_x" json:"document_signature_x,omitempty"`
	DocumentSignatureY      *float64 `gorm:"column:document_signature_y" json:"document_signature_y,omitempty"`
	DocumentSignatureWidth  *float64 `gorm:"column:document_signature_width" json:"document_signature_width,omitempty"`
	DocumentSignatureHeight *float64 `gorm:"column:document_signature_height" json:"document_signature_height,omitempty"`
	DocumentPreviewWidth    *float64 `gorm:"column:document_preview_width" json:"document_preview_width,omitempty"`
	DocumentPreviewHeight   *float64 `gorm:"column:document_preview_height" json:"document_preview_height,omitempty"`

	DocumentSignedByMO  bool `gorm:"column:document_signed_by_mo;not null;default:false" json:"document_signed_by_mo"`
	DocumentSignedByCCH bool `gorm:"column:document_signed_by_cch;not null;default:false" json:"document_signed_by_cch"`

	DocumentAreaID     uuid.UUID `gorm:"column:document_area_id;type:uuid;not null;index" json:"document_area_id"`
	DocumentCategoryID uuid.UUID `gorm:"column:document_category_id;type:uuid;not null;index" json:"document_category_id"`
	DocumentUserID     uuid.UUID `gorm:"column:document_user_id;type:uuid;not null;index" json:"document_user_id"`

	Area     *areaModel.AreaModel         `gorm:"foreignKey:DocumentAreaID;references:AreaID;constraint:OnDelete:CASCADE" json:"area,omitempty"`
	Category *categoryModel.CategoryModel `gorm:"foreignKey:DocumentCategoryID;references:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	Uploader *userModel.UserModel         `gorm:"foreignKey:DocumentUserID;references:UserID;constraint:OnDelete:CASCADE" json:"uploader,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DocumentModel) TableName() string {
	return "documents"
}
