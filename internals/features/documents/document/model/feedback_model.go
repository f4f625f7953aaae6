package model

import (
	"time"

	"github.com/google/uuid"

	userModel "memoku_backend/internals/features/users/user/model"
)

// FeedbackModel: catatan review append-only. Tidak pernah di-update/di-delete
// langsung; hanya ikut terhapus via cascade dokumen.
type FeedbackModel struct {
	FeedbackID         uuid.UUID `gorm:"column:feedback_id;type:uuid;default:gen_random_uuid();primaryKey" json:"feedback_id"`
	FeedbackDocumentID uuid.UUID `gorm:"column:feedback_document_id;type:uuid;not null;index" json:"feedback_document_id"`
	FeedbackUserID     uuid.UUID `gorm:"column:feedback_user_id;type:uuid;not null;index" json:"feedback_user_id"`
	FeedbackMessage    string    `gorm:"column:feedback_message;type:text;not null" json:"feedback_message"`

	Document *DocumentModel       `gorm:"foreignKey:FeedbackDocumentID;references:DocumentID;constraint:OnDelete:CASCADE" json:"document,omitempty"`
	User     *userModel.UserModel `gorm:"foreignKey:FeedbackUserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}
