package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Prefix penyimpanan blob.
const (
	DirDocuments  = "documents"
	DirSignatures = "signatures"
)

// BlobStore adalah facade simpan/buka/hapus file yang seragam untuk controller.
// Key yang dikembalikan disimpan di DB dan dipakai ulang untuk Open/Delete.
type BlobStore interface {
	SaveMultipart(ctx context.Context, dir string, fh *multipart.FileHeader) (key string, err error)
	SaveBytes(ctx context.Context, dir, filename string, data []byte, contentType string) (key string, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// NewFromEnv memilih backend: Aliyun OSS bila ALI_OSS_* lengkap,
// selain itu disk lokal (FILE_STORAGE_DIR, default "./storage").
func NewFromEnv() (BlobStore, error) {
	if os.Getenv("ALI_OSS_ENDPOINT") != "" {
		s, err := NewOSSStoreFromEnv()
		if err != nil {
			return nil, err
		}
		log.Println("✅ BlobStore: Aliyun OSS")
		return s, nil
	}
	base := os.Getenv("FILE_STORAGE_DIR")
	if base == "" {
		base = "./storage"
	}
	log.Printf("✅ BlobStore: local disk (%s)", base)
	return NewLocalStore(base)
}

/* ===============================
   Local disk backend
=================================*/

type LocalStore struct {
	BaseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir base: %w", err)
	}
	return &LocalStore{BaseDir: baseDir}, nil
}

func (s *LocalStore) SaveMultipart(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := BuildObjectKey(dir, fh.Filename)
	if err := s.writeStream(key, src); err != nil {
		return "", err
	}
	return key, nil
}

func (s *LocalStore) SaveBytes(ctx context.Context, dir, filename string, data []byte, _ string) (string, error) {
	key := BuildObjectKey(dir, filename)
	if err := s.writeStream(key, strings.NewReader(string(data))); err != nil {
		return "", err
	}
	return key, nil
}

func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	p, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	p, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStore) writeStream(key string, src io.Reader) error {
	full := filepath.Join(s.BaseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	dst, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(full)
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// resolve menolak key yang keluar dari BaseDir (path traversal).
func (s *LocalStore) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("invalid key")
	}
	return filepath.Join(s.BaseDir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

/* ===============================
   Object key helpers
=================================*/

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename menjaga nama asli tetap terbaca tapi aman dipakai sebagai key.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	if name == "" || name == "." {
		name = "file"
	}
	return name
}

// BuildObjectKey: "{dir}/{unixTimestamp}_{namaAsli}".
func BuildObjectKey(dir, filename string) string {
	return fmt.Sprintf("%s/%d_%s", strings.Trim(dir, "/"), time.Now().Unix(), SanitizeFilename(filename))
}
