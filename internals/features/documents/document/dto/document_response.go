package dto

import (
	"time"

	model "memoku_backend/internals/features/documents/document/model"
)

func NewDocumentResponse(m *model.DocumentModel) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:  m.DocumentID,
		Title:       m.DocumentTitle,
		PeriodStart: time.Time(m.DocumentPeriodStart).Format(dateLayout),
		PeriodEnd:   time.Time(m.DocumentPeriodEnd).Format(dateLayout),
		Status:      m.DocumentStatus,
		FileName:    m.DocumentFileName,
		FileSize:    m.DocumentFileSize,
		FileMime:    m.DocumentFileMime,
		AreaID:      m.DocumentAreaID,
		CategoryID:  m.DocumentCategoryID,
		UploaderID:  m.DocumentUserID,
		SignedByMO:  m.DocumentSignedByMO,
		SignedByCCH: m.DocumentSignedByCCH,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Area != nil {
		resp.AreaName = m.Area.AreaName
	}
	if m.Category != nil {
		resp.CategoryName = m.Category.CategoryName
	}
	if m.Uploader != nil {
		resp.UploaderName = m.Uploader.UserFullName
	}
	return resp
}

func NewDocumentResponses(ms []model.DocumentModel) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewDocumentResponse(&ms[i]))
	}
	return out
}

func NewFeedbackResponse(f *model.FeedbackModel) FeedbackResponse {
	resp := FeedbackResponse{
		FeedbackID: f.FeedbackID,
		Message:    f.FeedbackMessage,
		AuthorID:   f.FeedbackUserID,
		CreatedAt:  f.CreatedAt,
	}
	if f.User != nil {
		resp.AuthorName = f.User.UserFullName
		resp.AuthorRole = f.User.UserRole
	}
	return resp
}
