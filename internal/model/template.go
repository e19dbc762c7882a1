package model

import "time"

// SKTemplate adalah metadata satu paket template DOCX. Satu key logis
// (misal sk_template_gty) hanya punya satu blob aktif. Template hasil
// upload baru disimpan inline di kolom content; template lama hasil
// migrasi hanya punya file_url dan diambil lewat object storage.
type SKTemplate struct {
	Key       string    `db:"key"        json:"key"`
	FileName  string    `db:"file_name"  json:"file_name"`
	MimeType  string    `db:"mime_type"  json:"mime_type"`
	Content   []byte    `db:"content"    json:"-"`
	FileURL   *string   `db:"file_url"   json:"file_url,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type UploadTemplateRequest struct {
	Key      string `json:"key"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	Content  string `json:"content"` // base64
}

// RenderSettings adalah baris tunggal pengaturan pembuatan SK yang bisa
// diubah dari halaman pengaturan (penandatangan, format nomor, tahun ajaran).
type RenderSettings struct {
	ID               int       `db:"id"                json:"id"`
	NumberFormat     string    `db:"number_format"     json:"number_format"`
	KetuaName        string    `db:"ketua_name"        json:"ketua_name"`
	SekretarisName   string    `db:"sekretaris_name"   json:"sekretaris_name"`
	AcademicYear     string    `db:"academic_year"     json:"academic_year"`
	DefaultKecamatan string    `db:"default_kecamatan" json:"default_kecamatan"`
	UpdatedAt        time.Time `db:"updated_at"        json:"updated_at"`
}

type UpdateSettingsRequest struct {
	NumberFormat     string `json:"number_format"`
	KetuaName        string `json:"ketua_name"`
	SekretarisName   string `json:"sekretaris_name"`
	AcademicYear     string `json:"academic_year"`
	DefaultKecamatan string `json:"default_kecamatan"`
}
