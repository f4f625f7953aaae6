package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"testing"
)

// formFileHeader membungkus bytes sebagai *multipart.FileHeader sungguhan
// lewat roundtrip multipart writer/reader.
func formFileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("signature", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["signature"]
	if len(files) != 1 {
		t.Fatalf("file form hilang: %v", form.File)
	}
	return files[0]
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: 30, G: 30, B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeSignatureShrinksLargeImage(t *testing.T) {
	fh := formFileHeader(t, "ttd.png", encodePNG(t, 2048, 512))

	out, err := NormalizeSignature(fh)
	if err != nil {
		t.Fatalf("NormalizeSignature: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("hasil bukan PNG valid: %v", err)
	}
	b := img.Bounds()
	if b.Dx() > 1024 || b.Dy() > 1024 {
		t.Errorf("dimensi tidak dibatasi: %dx%d", b.Dx(), b.Dy())
	}
	// Rasio aspek 4:1 dipertahankan.
	if b.Dx() != 1024 || b.Dy() != 256 {
		t.Errorf("fit tidak proporsional: %dx%d", b.Dx(), b.Dy())
	}
}

func TestNormalizeSignatureKeepsSmallImage(t *testing.T) {
	fh := formFileHeader(t, "ttd.png", encodePNG(t, 300, 120))

	out, err := NormalizeSignature(fh)
	if err != nil {
		t.Fatalf("NormalizeSignature: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("hasil bukan PNG valid: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 120 {
		t.Errorf("gambar kecil tidak boleh di-resize: %dx%d", b.Dx(), b.Dy())
	}
}

func TestNormalizeSignatureRejectsGarbage(t *testing.T) {
	fh := formFileHeader(t, "ttd.png", []byte("bukan gambar sama sekali"))
	if _, err := NormalizeSignature(fh); err == nil {
		t.Error("payload non-gambar harus ditolak")
	}
}

func TestNormalizeSignatureRejectsOversize(t *testing.T) {
	big := make([]byte, MaxSignatureBytes+1)
	fh := formFileHeader(t, "ttd.png", big)
	if _, err := NormalizeSignature(fh); err == nil {
		t.Error("gambar di atas batas ukuran harus ditolak")
	}
}

func TestPNGFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ttd.webp", "ttd.png"},
		{"ttd.jpg", "ttd.png"},
		{"ttd", "ttd.png"},
		{"", "signature.png"},
	}
	for _, tc := range cases {
		if got := PNGFilename(tc.in); got != tc.want {
			t.Errorf("PNGFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
