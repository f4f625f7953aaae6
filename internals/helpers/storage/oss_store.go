package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStore menyimpan blob di Aliyun OSS. Konfigurasi penuh dari ENV:
// ALI_OSS_ENDPOINT / ALI_OSS_ACCESS_KEY / ALI_OSS_SECRET_KEY / ALI_OSS_BUCKET
// (+ opsional ALI_OSS_SECURITY_TOKEN, ALI_OSS_PREFIX).
type OSSStore struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	BucketName string
	Prefix     string
}

func NewOSSStoreFromEnv() (*OSSStore, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSStore{
		Client:     client,
		Bucket:     bkt,
		BucketName: bucketName,
		Prefix:     strings.Trim(getEnv("ALI_OSS_PREFIX"), "/"),
	}, nil
}

func (s *OSSStore) SaveMultipart(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := s.withPrefix(BuildObjectKey(dir, fh.Filename))
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentDisposition("inline"),
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		opts = append(opts, oss.ContentType(ct))
	}
	if err := s.Bucket.PutObject(key, src, opts...); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return key, nil
}

func (s *OSSStore) SaveBytes(ctx context.Context, dir, filename string, data []byte, contentType string) (string, error) {
	key := s.withPrefix(BuildObjectKey(dir, filename))
	opts := []oss.Option{oss.WithContext(ctx)}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return key, nil
}

func (s *OSSStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.Bucket.GetObject(key, oss.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("oss get: %w", err)
	}
	return rc, nil
}

func (s *OSSStore) Delete(ctx context.Context, key string) error {
	if err := s.Bucket.DeleteObject(key, oss.WithContext(ctx)); err != nil {
		return fmt.Errorf("oss delete: %w", err)
	}
	return nil
}

func (s *OSSStore) withPrefix(key string) string {
	if s.Prefix == "" {
		return key
	}
	return s.Prefix + "/" + key
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }
