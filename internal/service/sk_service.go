package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simmaci/simmaci-backend/internal/model"
	"github.com/simmaci/simmaci-backend/internal/renderer"
	"github.com/simmaci/simmaci-backend/internal/repository"
	"github.com/simmaci/simmaci-backend/internal/response"
	"github.com/simmaci/simmaci-backend/internal/utils"
)

var (
	ErrSKNotFound        = errors.New("dokumen SK tidak ditemukan")
	ErrInvalidTransition = errors.New("perubahan status tidak diizinkan")
)

// Transisi status yang sah. rejected dan archived terminal.
var allowedTransitions = map[string][]string{
	model.SKStatusDraft:    {model.SKStatusPending},
	model.SKStatusPending:  {model.SKStatusApproved, model.SKStatusRejected},
	model.SKStatusApproved: {model.SKStatusActive},
	model.SKStatusActive:   {model.SKStatusArchived},
}

// GenerateResult hasil pembuatan dokumen. Warning terisi bila file sudah
// jadi tetapi ada efek samping yang gagal (misal penyimpanan nomor);
// file tetap dikirim ke user.
type GenerateResult struct {
	FileName    string
	ContentType string
	Content     []byte
	Nomor       string
	TemplateKey string
	Warning     string
}

type SKService interface {
	GetAll(ctx context.Context, filter model.SKFilter) ([]*model.SKDocument, *response.Pagination, error)
	GetByID(ctx context.Context, id string) (*model.SKDetail, error)
	Create(ctx context.Context, req model.CreateSKRequest, createdBy string) (*model.SKDetail, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Generate(ctx context.Context, id string) (*GenerateResult, error)
	Receipt(ctx context.Context, id string) ([]byte, string, error)
	Verify(ctx context.Context, id string) (*model.VerifyResponse, error)
}

type skService struct {
	repo     repository.SKRepository
	guruRepo repository.GuruRepository
	seqRepo  repository.SequenceRepository
	settings SettingsService
	renderer *renderer.Renderer
}

func NewSKService(
	repo repository.SKRepository,
	guruRepo repository.GuruRepository,
	seqRepo repository.SequenceRepository,
	settings SettingsService,
	rend *renderer.Renderer,
) SKService {
	return &skService{
		repo: repo, guruRepo: guruRepo, seqRepo: seqRepo,
		settings: settings, renderer: rend,
	}
}

func (s *skService) GetAll(ctx context.Context, filter model.SKFilter) ([]*model.SKDocument, *response.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	docs, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	return docs, buildPagination(filter.Page, filter.PerPage, total), nil
}

func (s *skService) GetByID(ctx context.Context, id string) (*model.SKDetail, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("ID tidak valid")
	}

	detail, err := s.repo.FindByIDWithDetail(ctx, uid)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrSKNotFound
	}
	return detail, nil
}

func (s *skService) Create(ctx context.Context, req model.CreateSKRequest, createdBy string) (*model.SKDetail, error) {
	guruUID, err := uuid.Parse(req.GuruID)
	if err != nil {
		return nil, errors.New("guru_id tidak valid")
	}
	guru, err := s.guruRepo.FindByID(ctx, guruUID)
	if err != nil {
		return nil, err
	}
	if guru == nil {
		return nil, ErrGuruNotFound
	}

	doc := &model.SKDocument{
		ID:         uuid.New(),
		JenisSK:    req.JenisSK,
		GuruID:     guruUID,
		Status:     model.SKStatusDraft,
		TMT:        req.TMT,
		AkhirTugas: req.AkhirTugas,
		Notes:      req.Notes,
	}

	if req.SchoolID != "" {
		schoolUID, err := uuid.Parse(req.SchoolID)
		if err != nil {
			return nil, errors.New("school_id tidak valid")
		}
		doc.SchoolID = &schoolUID
	}

	if req.ValidUntil != "" {
		t, err := time.Parse("2006-01-02", req.ValidUntil)
		if err != nil {
			return nil, errors.New("format valid_until tidak valid, gunakan YYYY-MM-DD")
		}
		doc.ValidUntil = &t
	}

	if createdByUID, err := uuid.Parse(createdBy); err == nil {
		doc.CreatedBy = &createdByUID
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}

	return s.repo.FindByIDWithDetail(ctx, doc.ID)
}

func (s *skService) UpdateStatus(ctx context.Context, id, status string) error {
	detail, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	valid := false
	for _, next := range allowedTransitions[detail.Status] {
		if next == status {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, detail.Status, status)
	}

	var approvedAt *time.Time
	if status == model.SKStatusApproved {
		now := time.Now()
		approvedAt = &now
	}
	return s.repo.UpdateStatus(ctx, detail.ID, status, approvedAt)
}

func (s *skService) Delete(ctx context.Context, id string) error {
	detail, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, detail.ID)
}

// Generate menjalankan seluruh pipeline SK: ambil record, baca pengaturan
// sekali, tetapkan nomor bila belum ada, render DOCX, lalu simpan nomor.
// Kegagalan menyimpan nomor setelah file jadi tidak membatalkan unduhan;
// user hanya diberi peringatan.
func (s *skService) Generate(ctx context.Context, id string) (*GenerateResult, error) {
	detail, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg, err := s.settings.Configuration(ctx)
	if err != nil {
		return nil, fmt.Errorf("membaca pengaturan render: %w", err)
	}

	issuedAt := time.Now()
	if detail.ApprovedAt != nil {
		issuedAt = *detail.ApprovedAt
	}

	nomor := ""
	if detail.NomorSK != nil {
		nomor = strings.TrimSpace(*detail.NomorSK)
	}
	assigned := false
	if nomor == "" {
		scope := fmt.Sprintf("sk:%s:%d", renderer.CategoryScope(detail.JenisSK), issuedAt.Year())
		seq, err := s.seqRepo.Next(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("mengambil nomor urut %s: %w", scope, err)
		}
		nomor = renderer.FormatNumber(cfg.NumberFormat, renderer.PadSequence(seq), issuedAt)
		assigned = true
	}

	result, err := s.renderer.Render(ctx, cfg, s.renderInput(detail, nomor, issuedAt))
	if err != nil {
		return nil, err
	}

	warning := ""
	if assigned {
		if err := s.repo.UpdateNomor(ctx, detail.ID, nomor); err != nil {
			log.Printf("nomor SK %s gagal disimpan untuk dokumen %s: %v", nomor, detail.ID, err)
			warning = "Dokumen berhasil dibuat, tetapi nomor SK gagal tersimpan. Nomor dapat berubah saat generate ulang."
		}
	}

	return &GenerateResult{
		FileName:    result.FileName,
		ContentType: result.ContentType,
		Content:     result.Content,
		Nomor:       nomor,
		TemplateKey: result.TemplateKey,
		Warning:     warning,
	}, nil
}

func (s *skService) renderInput(detail *model.SKDetail, nomor string, issuedAt time.Time) renderer.Input {
	in := renderer.Input{
		DocumentID: detail.ID.String(),
		Jenis:      detail.JenisSK,
		Nomor:      nomor,
		IssuedAt:   issuedAt,
		TMT:        detail.TMT,
		AkhirTugas: detail.AkhirTugas,
	}
	if in.TMT == "" && detail.Guru != nil {
		in.TMT = detail.Guru.TMT
	}
	if detail.Guru != nil {
		in.Subject = renderer.SubjectData{
			Name:       detail.Guru.FullName,
			NIP:        detail.Guru.NIP,
			NUPTK:      detail.Guru.NUPTK,
			NIK:        detail.Guru.NIK,
			BirthPlace: detail.Guru.BirthPlace,
			BirthDate:  detail.Guru.BirthDate,
			Education:  detail.Guru.LastEducation,
			Status:     detail.Guru.EmployeeStatus,
			Jabatan:    detail.Guru.Jabatan,
		}
	}
	if detail.School != nil {
		in.School = renderer.SchoolData{
			Name:      detail.School.Name,
			Kecamatan: detail.School.Kecamatan,
			Address:   detail.School.Address,
		}
	}
	return in
}

// Receipt membangun tanda terima PDF satu halaman untuk penyerahan SK.
func (s *skService) Receipt(ctx context.Context, id string) ([]byte, string, error) {
	detail, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	cfg, err := s.settings.Configuration(ctx)
	if err != nil {
		return nil, "", err
	}

	nomor := "-"
	if detail.NomorSK != nil && *detail.NomorSK != "" {
		nomor = *detail.NomorSK
	}

	data := utils.ReceiptData{
		Nomor:     nomor,
		JenisSK:   detail.JenisSK,
		IssuedAt:  detail.CreatedAt,
		KetuaName: cfg.KetuaName,
		QRCodePNG: renderer.VerificationQR(renderer.VerificationURL(cfg.AppOrigin, detail.ID.String())),
	}
	if detail.Guru != nil {
		data.GuruName = detail.Guru.FullName
		data.NIP = detail.Guru.NIP
	}
	if detail.School != nil {
		data.SchoolName = detail.School.Name
	}
	if detail.ApprovedAt != nil {
		data.IssuedAt = *detail.ApprovedAt
	}

	pdfBytes, err := utils.BuildReceiptPDF(data)
	if err != nil {
		return nil, "", fmt.Errorf("membuat tanda terima: %w", err)
	}

	fileName := fmt.Sprintf("TandaTerima_%s.pdf", strings.ReplaceAll(data.GuruName, " ", "_"))
	return pdfBytes, fileName, nil
}

// Verify kontrak endpoint publik: tiga keadaan dengan teks berbeda.
// Kedaluwarsa dihitung tepat satu tahun setelah tanggal acuan valid_until.
func (s *skService) Verify(ctx context.Context, id string) (*model.VerifyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return &model.VerifyResponse{
			State:   model.VerifyStateNotFound,
			IsValid: false,
			Message: "Dokumen tidak ditemukan. SK ini mungkin tidak sah.",
		}, nil
	}

	doc, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return &model.VerifyResponse{
			State:   model.VerifyStateNotFound,
			IsValid: false,
			Message: "Dokumen tidak ditemukan. SK ini mungkin tidak sah.",
		}, nil
	}

	if doc.ValidUntil != nil && time.Now().After(doc.ValidUntil.AddDate(1, 0, 0)) {
		return &model.VerifyResponse{
			State:    model.VerifyStateExpired,
			IsValid:  true,
			Document: doc,
			Message:  "SK ini sah diterbitkan, tetapi masa berlakunya sudah berakhir.",
		}, nil
	}

	return &model.VerifyResponse{
		State:    model.VerifyStateActive,
		IsValid:  true,
		Document: doc,
		Message:  "SK valid dan sah dikeluarkan oleh yayasan.",
	}, nil
}
