package imagex

import (
	"bytes"
	"fmt"
	"image"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Batas wajar untuk gambar tanda tangan.
const (
	MaxSignatureBytes = 2 * 1024 * 1024
	maxSignatureDim   = 1024
)

// NormalizeSignature membaca gambar tanda tangan (png/jpg/webp), membatasi
// dimensinya, dan mengembalikan hasil re-encode PNG yang siap disimpan.
func NormalizeSignature(fh *multipart.FileHeader) ([]byte, error) {
	if fh == nil {
		return nil, fmt.Errorf("nil file header")
	}
	if fh.Size > MaxSignatureBytes {
		return nil, fmt.Errorf("ukuran gambar tanda tangan maksimal %dKB", MaxSignatureBytes/1024)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	var img image.Image
	if strings.ToLower(filepath.Ext(fh.Filename)) == ".webp" {
		img, err = webp.Decode(src)
	} else {
		img, err = imaging.Decode(src, imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak didukung (pakai png/jpg/webp)")
	}

	b := img.Bounds()
	if b.Dx() > maxSignatureDim || b.Dy() > maxSignatureDim {
		img = imaging.Fit(img, maxSignatureDim, maxSignatureDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("gagal encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// PNGFilename mengganti ekstensi nama asli menjadi .png.
func PNGFilename(original string) string {
	base := strings.TrimSuffix(original, filepath.Ext(original))
	if base == "" {
		base = "signature"
	}
	return base + ".png"
}
