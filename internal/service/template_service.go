package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/simmaci/simmaci-backend/internal/model"
	"github.com/simmaci/simmaci-backend/internal/repository"
	"github.com/simmaci/simmaci-backend/internal/utils"
)

var (
	ErrTemplateNotFound = errors.New("template tidak ditemukan")
	ErrTemplateInvalid  = errors.New("file template bukan paket DOCX yang valid")
)

// TemplateService adalah blob store template yang dibaca renderer
// (renderer.TemplateSource) sekaligus permukaan admin untuk mengelolanya.
type TemplateService interface {
	List(ctx context.Context) ([]*model.SKTemplate, error)
	Upload(ctx context.Context, req model.UploadTemplateRequest) (*model.SKTemplate, error)
	Delete(ctx context.Context, key string) error

	// GetBlob mengembalikan (nil, nil) bila key belum dikonfigurasi.
	GetBlob(ctx context.Context, key string) ([]byte, error)
}

type templateService struct {
	repo    repository.TemplateRepository
	storage *utils.StorageService
}

func NewTemplateService(repo repository.TemplateRepository, storage *utils.StorageService) TemplateService {
	return &templateService{repo: repo, storage: storage}
}

func (s *templateService) List(ctx context.Context) ([]*model.SKTemplate, error) {
	return s.repo.List(ctx)
}

func (s *templateService) Upload(ctx context.Context, req model.UploadTemplateRequest) (*model.SKTemplate, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, errors.New("key template wajib diisi")
	}

	content, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return nil, errors.New("isi template harus base64 yang valid")
	}
	// Paket DOCX adalah arsip zip; cukup cek magic number di sini,
	// validasi isi terjadi saat render.
	if !bytes.HasPrefix(content, []byte("PK")) {
		return nil, ErrTemplateInvalid
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = utils.MimeTypeDocx
	}

	// Salin ke object storage supaya blob bisa dipulihkan; kegagalan di
	// sini tidak menggagalkan upload karena content tetap tersimpan inline.
	var fileURL *string
	if url, err := s.storage.UploadTemplate(ctx, key, content, mimeType); err != nil {
		log.Printf("salinan template %s ke object storage gagal: %v", key, err)
	} else {
		fileURL = &url
	}

	tpl := &model.SKTemplate{
		Key:      key,
		FileName: req.FileName,
		MimeType: mimeType,
		Content:  content,
		FileURL:  fileURL,
	}
	if err := s.repo.Upsert(ctx, tpl); err != nil {
		return nil, err
	}

	tpl.Content = nil // jangan bawa blob di response
	return tpl, nil
}

func (s *templateService) Delete(ctx context.Context, key string) error {
	tpl, err := s.repo.Get(ctx, key)
	if err != nil {
		return err
	}
	if tpl == nil {
		return ErrTemplateNotFound
	}

	if tpl.FileURL != nil {
		if err := s.storage.DeleteFile(ctx, *tpl.FileURL); err != nil {
			log.Printf("hapus objek template %s gagal: %v", key, err)
		}
	}
	return s.repo.Delete(ctx, key)
}

func (s *templateService) GetBlob(ctx context.Context, key string) ([]byte, error) {
	tpl, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, nil
	}

	if len(tpl.Content) > 0 {
		return tpl.Content, nil
	}

	// Template lama hasil migrasi hanya punya URL
	if tpl.FileURL != nil {
		data, err := s.storage.Fetch(ctx, *tpl.FileURL)
		if err != nil {
			return nil, fmt.Errorf("mengambil template %s dari storage: %w", key, err)
		}
		return data, nil
	}

	return nil, nil
}
