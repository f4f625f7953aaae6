package storage

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestLocalStoreSaveOpenDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	key, err := store.SaveBytes(ctx, DirSignatures, "ttd cch.png", []byte("isi-gambar"), "image/png")
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	if !strings.HasPrefix(key, DirSignatures+"/") {
		t.Errorf("key harus berprefix direktori: %q", key)
	}
	if strings.Contains(key, " ") {
		t.Errorf("key tidak boleh memuat spasi: %q", key)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "isi-gambar" {
		t.Errorf("isi berbeda: %q", data)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Open(ctx, key); err == nil {
		t.Error("Open setelah Delete harus gagal")
	}

	// Delete idempoten: file sudah tidak ada bukan error.
	if err := store.Delete(ctx, key); err != nil {
		t.Errorf("Delete kedua harus diam: %v", err)
	}
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"../etc/passwd", "documents/../../x", "..\\..\\x"} {
		if _, err := store.Open(ctx, key); err == nil {
			t.Errorf("Open(%q) harus ditolak", key)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"laporan q1.pdf", "laporan_q1.pdf"},
		{"../../etc/passwd", "passwd"},
		{"ttd (final)!.png", "ttd_final_.png"},
		{"", "file"},
		{"memo-2026_v2.pdf", "memo-2026_v2.pdf"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("/documents/", "laporan.pdf")
	if !strings.HasPrefix(key, "documents/") {
		t.Errorf("prefix salah: %q", key)
	}
	if !strings.HasSuffix(key, "_laporan.pdf") {
		t.Errorf("nama asli hilang: %q", key)
	}
}
