package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/simmaci/simmaci-backend/internal/config"
)

// StorageService membungkus MinIO untuk penyimpanan paket template SK.
// Template hasil upload baru juga disalin ke sini supaya bisa dipulihkan;
// template lama hasil migrasi hanya punya URL dan diambil lewat Fetch.
type StorageService struct {
	client   *minio.Client
	bucket   string
	endpoint string
}

const MimeTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const MaxTemplateSize = 10 * 1024 * 1024 // 10 MB

func NewStorageService(cfg *config.MinIOConfig) (*StorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.User, cfg.Password, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Pastikan bucket ada
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &StorageService{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: fmt.Sprintf("%s://%s", scheme, cfg.Endpoint),
	}, nil
}

// UploadTemplate simpan paket template ke MinIO dan kembalikan URL-nya.
// Nama objek memakai key logis supaya upload ulang menimpa versi lama.
func (s *StorageService) UploadTemplate(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if len(data) > MaxTemplateSize {
		return "", fmt.Errorf("ukuran template melebihi batas maksimal 10MB")
	}
	if contentType == "" {
		contentType = MimeTypeDocx
	}

	objectName := fmt.Sprintf("templates/%s-%s.docx", key, time.Now().Format("20060102150405"))

	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("gagal upload template: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectName), nil
}

// Fetch ambil isi objek berdasarkan URL yang pernah dikembalikan UploadTemplate
// (atau URL hasil migrasi data lama pada bucket yang sama).
func (s *StorageService) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	prefix := fmt.Sprintf("%s/%s/", s.endpoint, s.bucket)
	objectName := strings.TrimPrefix(fileURL, prefix)
	if objectName == fileURL {
		return nil, fmt.Errorf("URL template di luar bucket penyimpanan: %s", fileURL)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil template: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca template: %w", err)
	}
	return data, nil
}

// DeleteFile hapus objek dari MinIO berdasarkan URL-nya
func (s *StorageService) DeleteFile(ctx context.Context, fileURL string) error {
	prefix := fmt.Sprintf("%s/%s/", s.endpoint, s.bucket)
	objectName := strings.TrimPrefix(fileURL, prefix)

	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}
