package constants

import (
	"path/filepath"
	"strings"
)

// ContentTypeFromExt menebak Content-Type dari ekstensi file tersimpan.
// Dipakai saat download/preview dokumen.
func ContentTypeFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// IsPDFExt: dokumen MEMO wajib PDF saat upload.
func IsPDFExt(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}

// IsImageExt: tanda tangan harus berupa gambar.
func IsImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return true
	default:
		return false
	}
}
