package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTemplateNotConfigured: key template (termasuk cadangannya) tidak punya
// blob tersimpan. Ini kesalahan konfigurasi yang harus sampai ke user,
// bukan crash.
var ErrTemplateNotConfigured = errors.New("template SK belum dikonfigurasi")

const ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// TemplateSource menyediakan paket template per key logis.
// GetBlob mengembalikan (nil, nil) bila key belum dikonfigurasi.
type TemplateSource interface {
	GetBlob(ctx context.Context, key string) ([]byte, error)
}

// Configuration adalah pengaturan render yang dibaca sekali di batas
// pemanggilan, bukan dicomot dari state global di tengah proses.
type Configuration struct {
	AppOrigin        string
	NumberFormat     string
	KetuaName        string
	SekretarisName   string
	AcademicYear     string
	DefaultKecamatan string
}

// SubjectData atribut guru/kamad subjek SK. Field tanggal berupa teks
// mentah; renderer yang menormalkan.
type SubjectData struct {
	Name       string
	NIP        string
	NUPTK      string
	NIK        string
	BirthPlace string
	BirthDate  string
	Education  string
	Status     string
	Jabatan    string
}

type SchoolData struct {
	Name      string
	Kecamatan string
	Address   string
}

type Input struct {
	DocumentID string
	Jenis      string
	Nomor      string // nomor terformat yang sudah ditetapkan
	IssuedAt   time.Time
	TMT        string // teks mentah
	AkhirTugas string // teks mentah
	Subject    SubjectData
	School     SchoolData
}

type Result struct {
	FileName    string
	ContentType string
	Content     []byte
	TemplateKey string // key yang benar-benar dipakai (bisa key cadangan)
}

type Renderer struct {
	templates TemplateSource
}

func New(templates TemplateSource) *Renderer {
	return &Renderer{templates: templates}
}

// Render menjalankan pipeline lengkap: pilih template, ambil blob, parse
// tanggal, bangun map substitusi, generate QR, substitusi arsip.
// Satu pemanggilan = satu dokumen; tidak ada state yang dibagi antar
// pemanggilan.
func (r *Renderer) Render(ctx context.Context, cfg Configuration, in Input) (*Result, error) {
	// Hanya NIP yang jadi sinyal PNS. NUPTK/NIK juga 16 digit tapi
	// dimiliki guru non-PNS, jadi tidak boleh ikut ke selector.
	key := SelectTemplateKey(SelectorInput{
		Jenis:      in.Jenis,
		Jabatan:    in.Subject.Jabatan,
		NationalID: in.Subject.NIP,
		Status:     in.Subject.Status,
	})

	blob, err := r.templates.GetBlob(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("mengambil template %s: %w", key, err)
	}
	usedKey := key
	if blob == nil {
		if fallback, ok := FallbackTemplateKey(key); ok {
			blob, err = r.templates.GetBlob(ctx, fallback)
			if err != nil {
				return nil, fmt.Errorf("mengambil template %s: %w", fallback, err)
			}
			usedKey = fallback
		}
	}
	if blob == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotConfigured, key)
	}

	fields := buildFields(cfg, in)

	qrPNG := VerificationQR(VerificationURL(cfg.AppOrigin, in.DocumentID))

	content, err := RenderDocx(blob, fields.Projection(), qrPNG)
	if err != nil {
		return nil, fmt.Errorf("memproses template %s: %w", usedKey, err)
	}

	return &Result{
		FileName:    FileName(in.Subject.Name, in.School.Name),
		ContentType: ContentTypeDocx,
		Content:     content,
		TemplateKey: usedKey,
	}, nil
}

func buildFields(cfg Configuration, in Input) DocumentFields {
	kecamatan := in.School.Kecamatan
	if kecamatan == "" {
		kecamatan = cfg.DefaultKecamatan
	}

	return DocumentFields{
		Nama:         in.Subject.Name,
		NIP:          in.Subject.NIP,
		NUPTK:        in.Subject.NUPTK,
		NIK:          in.Subject.NIK,
		TempatLahir:  in.Subject.BirthPlace,
		TanggalLahir: ParseFlexible(in.Subject.BirthDate),
		Pendidikan:   in.Subject.Education,
		Status:       in.Subject.Status,
		Jabatan:      in.Subject.Jabatan,
		Unit:         in.School.Name,
		Kecamatan:    kecamatan,
		Alamat:       in.School.Address,

		Nomor:            in.Nomor,
		TanggalPenetapan: DateOf(in.IssuedAt),
		TMT:              ParseFlexible(in.TMT),
		AkhirTugas:       ParseFlexible(in.AkhirTugas),
		TahunAjaran:      cfg.AcademicYear,
		Ketua:            cfg.KetuaName,
		Sekretaris:       cfg.SekretarisName,
	}
}

