package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simmaci/simmaci-backend/internal/model"
	"github.com/simmaci/simmaci-backend/internal/renderer"
)

// ── Fakes ──────────────────────────────────────────────

type fakeSKRepo struct {
	docs            map[uuid.UUID]*model.SKDocument
	details         map[uuid.UUID]*model.SKDetail
	updateNomorErr  error
	updatedNomor    string
	updateNomorHits int
}

func (f *fakeSKRepo) FindAll(_ context.Context, _ model.SKFilter) ([]*model.SKDocument, int64, error) {
	return nil, 0, nil
}

func (f *fakeSKRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SKDocument, error) {
	return f.docs[id], nil
}

func (f *fakeSKRepo) FindByIDWithDetail(_ context.Context, id uuid.UUID) (*model.SKDetail, error) {
	return f.details[id], nil
}

func (f *fakeSKRepo) Create(_ context.Context, _ *model.SKDocument) error { return nil }

func (f *fakeSKRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ string, _ *time.Time) error {
	return nil
}

func (f *fakeSKRepo) UpdateNomor(_ context.Context, _ uuid.UUID, nomor string) error {
	f.updateNomorHits++
	if f.updateNomorErr != nil {
		return f.updateNomorErr
	}
	f.updatedNomor = nomor
	return nil
}

func (f *fakeSKRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeGuruRepo struct{}

func (fakeGuruRepo) FindAll(_ context.Context, _ model.GuruFilter) ([]*model.Guru, int64, error) {
	return nil, 0, nil
}
func (fakeGuruRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.Guru, error) {
	return nil, nil
}
func (fakeGuruRepo) Create(_ context.Context, _ *model.Guru) error { return nil }
func (fakeGuruRepo) Update(_ context.Context, _ *model.Guru) error { return nil }
func (fakeGuruRepo) Delete(_ context.Context, _ uuid.UUID) error   { return nil }

type fakeSeqRepo struct {
	next  int
	calls []string
}

func (f *fakeSeqRepo) Next(_ context.Context, scope string) (int, error) {
	f.calls = append(f.calls, scope)
	f.next++
	return f.next, nil
}

type fakeSettings struct {
	cfg renderer.Configuration
}

func (f *fakeSettings) Get(_ context.Context) (*model.RenderSettings, error) { return nil, nil }
func (f *fakeSettings) Update(_ context.Context, _ model.UpdateSettingsRequest) (*model.RenderSettings, error) {
	return nil, nil
}
func (f *fakeSettings) Configuration(_ context.Context) (renderer.Configuration, error) {
	return f.cfg, nil
}

type fakeTemplates struct {
	blobs map[string][]byte
}

func (f *fakeTemplates) GetBlob(_ context.Context, key string) ([]byte, error) {
	return f.blobs[key], nil
}

// ── Helpers ────────────────────────────────────────────

func minimalTemplate(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := w.Write([]byte(`<w:document><w:body><w:r><w:t>Nomor {NOMOR} untuk {NAMA}</w:t></w:r></w:body></w:document>`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf.Bytes()
}

func newTestService(t *testing.T, repo *fakeSKRepo, seq *fakeSeqRepo) SKService {
	t.Helper()
	tpl := minimalTemplate(t)
	rend := renderer.New(&fakeTemplates{blobs: map[string][]byte{
		renderer.TemplateKeyGuru:  tpl,
		renderer.TemplateKeyKamad: tpl,
	}})
	settings := &fakeSettings{cfg: renderer.Configuration{
		AppOrigin:    "https://simmaci.or.id",
		NumberFormat: "{NOMOR}/PC.L/A.II/H-34.B/{BULAN}/{TAHUN}",
	}}
	return NewSKService(repo, fakeGuruRepo{}, seq, settings, rend)
}

func sampleDetail(id uuid.UUID) *model.SKDetail {
	return &model.SKDetail{
		SKDocument: model.SKDocument{
			ID:      id,
			JenisSK: "SK Pembagian Tugas",
			Status:  model.SKStatusApproved,
		},
		Guru: &model.Guru{FullName: "Siti Aminah", EmployeeStatus: "GTY"},
		School: &model.School{
			Name: "MI Al-Hidayah", Kecamatan: "Paciran",
		},
	}
}

// ── Verify ─────────────────────────────────────────────

func TestVerifyNotFound(t *testing.T) {
	svc := newTestService(t, &fakeSKRepo{docs: map[uuid.UUID]*model.SKDocument{}}, &fakeSeqRepo{})

	// ID bukan UUID
	res, err := svc.Verify(context.Background(), "bukan-uuid")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.State != model.VerifyStateNotFound || res.IsValid {
		t.Errorf("state = %q, is_valid = %v; want not_found/false", res.State, res.IsValid)
	}

	// UUID sah tapi tidak ada
	res, err = svc.Verify(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.State != model.VerifyStateNotFound || res.IsValid {
		t.Errorf("state = %q, is_valid = %v; want not_found/false", res.State, res.IsValid)
	}
	if res.Document != nil {
		t.Error("dokumen tidak boleh bocor untuk ID yang tidak ada")
	}
}

func TestVerifyActive(t *testing.T) {
	id := uuid.New()
	validUntil := time.Now().AddDate(0, 6, 0) // masih berlaku
	repo := &fakeSKRepo{docs: map[uuid.UUID]*model.SKDocument{
		id: {ID: id, Status: model.SKStatusActive, ValidUntil: &validUntil},
	}}
	svc := newTestService(t, repo, &fakeSeqRepo{})

	res, err := svc.Verify(context.Background(), id.String())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.State != model.VerifyStateActive || !res.IsValid {
		t.Errorf("state = %q, is_valid = %v; want valid_active/true", res.State, res.IsValid)
	}
	if res.Document == nil {
		t.Error("dokumen harus ikut di response valid")
	}
}

// Kedaluwarsa dihitung satu tahun setelah valid_until, bukan pada
// valid_until itu sendiri.
func TestVerifyExpiryWindow(t *testing.T) {
	id := uuid.New()

	// Lewat valid_until tapi belum setahun: masih valid_active
	sixMonthsAgo := time.Now().AddDate(0, -6, 0)
	repo := &fakeSKRepo{docs: map[uuid.UUID]*model.SKDocument{
		id: {ID: id, ValidUntil: &sixMonthsAgo},
	}}
	svc := newTestService(t, repo, &fakeSeqRepo{})

	res, err := svc.Verify(context.Background(), id.String())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.State != model.VerifyStateActive {
		t.Errorf("6 bulan lewat valid_until: state = %q, want valid_active", res.State)
	}

	// Lebih dari setahun: valid_expired, tetap is_valid
	twoYearsAgo := time.Now().AddDate(-2, 0, 0)
	repo.docs[id] = &model.SKDocument{ID: id, ValidUntil: &twoYearsAgo}

	res, err = svc.Verify(context.Background(), id.String())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.State != model.VerifyStateExpired || !res.IsValid {
		t.Errorf("state = %q, is_valid = %v; want valid_expired/true", res.State, res.IsValid)
	}
}

func TestVerifyNoValidUntil(t *testing.T) {
	id := uuid.New()
	repo := &fakeSKRepo{docs: map[uuid.UUID]*model.SKDocument{
		id: {ID: id, Status: model.SKStatusActive},
	}}
	svc := newTestService(t, repo, &fakeSeqRepo{})

	res, err := svc.Verify(context.Background(), id.String())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.State != model.VerifyStateActive {
		t.Errorf("tanpa valid_until: state = %q, want valid_active", res.State)
	}
}

// ── Generate ───────────────────────────────────────────

func TestGenerateAssignsNomor(t *testing.T) {
	id := uuid.New()
	repo := &fakeSKRepo{details: map[uuid.UUID]*model.SKDetail{id: sampleDetail(id)}}
	seq := &fakeSeqRepo{}
	svc := newTestService(t, repo, seq)

	result, err := svc.Generate(context.Background(), id.String())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.Nomor == "" {
		t.Fatal("nomor tidak ditetapkan")
	}
	if result.Warning != "" {
		t.Errorf("warning tak terduga: %q", result.Warning)
	}
	if repo.updatedNomor != result.Nomor {
		t.Errorf("nomor tersimpan %q != nomor hasil %q", repo.updatedNomor, result.Nomor)
	}
	if len(seq.calls) != 1 {
		t.Fatalf("sequence dipanggil %d kali, want 1", len(seq.calls))
	}
	// Scope penomoran: kategori lebar + tahun
	wantScope := "sk:guru:" + time.Now().Format("2006")
	if seq.calls[0] != wantScope {
		t.Errorf("scope = %q, want %q", seq.calls[0], wantScope)
	}
	if len(result.Content) == 0 {
		t.Error("konten dokumen kosong")
	}
}

func TestGenerateKeepsExistingNomor(t *testing.T) {
	id := uuid.New()
	detail := sampleDetail(id)
	existing := "0042/PC.L/A.II/H-34.B/3/2024"
	detail.NomorSK = &existing
	repo := &fakeSKRepo{details: map[uuid.UUID]*model.SKDetail{id: detail}}
	seq := &fakeSeqRepo{}
	svc := newTestService(t, repo, seq)

	result, err := svc.Generate(context.Background(), id.String())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.Nomor != existing {
		t.Errorf("nomor = %q, want nomor lama %q", result.Nomor, existing)
	}
	if len(seq.calls) != 0 {
		t.Errorf("sequence tidak boleh dipanggil bila nomor sudah ada")
	}
	if repo.updateNomorHits != 0 {
		t.Errorf("nomor lama tidak boleh ditulis ulang")
	}
}

func TestGenerateWarningWhenPersistFails(t *testing.T) {
	id := uuid.New()
	repo := &fakeSKRepo{
		details:        map[uuid.UUID]*model.SKDetail{id: sampleDetail(id)},
		updateNomorErr: errors.New("koneksi putus"),
	}
	svc := newTestService(t, repo, &fakeSeqRepo{})

	result, err := svc.Generate(context.Background(), id.String())
	if err != nil {
		t.Fatalf("kegagalan simpan nomor tidak boleh menggagalkan unduhan: %v", err)
	}
	if result.Warning == "" {
		t.Error("warning harus terisi bila nomor gagal tersimpan")
	}
	if len(result.Content) == 0 {
		t.Error("file tetap harus dikirim")
	}
}

func TestGenerateNotFound(t *testing.T) {
	svc := newTestService(t, &fakeSKRepo{details: map[uuid.UUID]*model.SKDetail{}}, &fakeSeqRepo{})

	if _, err := svc.Generate(context.Background(), uuid.NewString()); !errors.Is(err, ErrSKNotFound) {
		t.Fatalf("err = %v, want ErrSKNotFound", err)
	}
}

// ── UpdateStatus ───────────────────────────────────────

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"draft ke pending", model.SKStatusDraft, model.SKStatusPending, true},
		{"pending ke approved", model.SKStatusPending, model.SKStatusApproved, true},
		{"pending ke rejected", model.SKStatusPending, model.SKStatusRejected, true},
		{"approved ke active", model.SKStatusApproved, model.SKStatusActive, true},
		{"active ke archived", model.SKStatusActive, model.SKStatusArchived, true},
		{"draft langsung active", model.SKStatusDraft, model.SKStatusActive, false},
		{"rejected terminal", model.SKStatusRejected, model.SKStatusPending, false},
		{"archived terminal", model.SKStatusArchived, model.SKStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			detail := sampleDetail(id)
			detail.Status = tt.from
			repo := &fakeSKRepo{details: map[uuid.UUID]*model.SKDetail{id: detail}}
			svc := newTestService(t, repo, &fakeSeqRepo{})

			err := svc.UpdateStatus(context.Background(), id.String(), tt.to)
			if tt.allowed && err != nil {
				t.Errorf("transisi %s -> %s ditolak: %v", tt.from, tt.to, err)
			}
			if !tt.allowed && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("transisi %s -> %s: err = %v, want ErrInvalidTransition", tt.from, tt.to, err)
			}
		})
	}
}
