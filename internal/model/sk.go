package model

import (
	"time"

	"github.com/google/uuid"
)

// Status dokumen SK mengikuti alur: draft -> pending -> approved -> active.
// rejected dan archived adalah terminal.
const (
	SKStatusDraft    = "draft"
	SKStatusPending  = "pending"
	SKStatusApproved = "approved"
	SKStatusActive   = "active"
	SKStatusRejected = "rejected"
	SKStatusArchived = "archived"
)

type SKDocument struct {
	ID         uuid.UUID  `db:"id"          json:"id"`
	JenisSK    string     `db:"jenis_sk"    json:"jenis_sk"`
	GuruID     uuid.UUID  `db:"guru_id"     json:"guru_id"`
	SchoolID   *uuid.UUID `db:"school_id"   json:"school_id"`
	NomorSK    *string    `db:"nomor_sk"    json:"nomor_sk"` // null sampai generate pertama
	Status     string     `db:"status"      json:"status"`
	TMT        string     `db:"tmt"         json:"tmt"`         // teks bebas, multi format
	AkhirTugas string     `db:"akhir_tugas" json:"akhir_tugas"` // teks bebas, boleh kosong
	ValidUntil *time.Time `db:"valid_until" json:"valid_until"` // acuan kedaluwarsa verifikasi
	Notes      string     `db:"notes"       json:"notes"`
	CreatedBy  *uuid.UUID `db:"created_by"  json:"created_by"`
	ApprovedAt *time.Time `db:"approved_at" json:"approved_at"`
	CreatedAt  time.Time  `db:"created_at"  json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"  json:"updated_at"`

	// Join fields
	GuruName   *string `db:"guru_name"   json:"guru_name,omitempty"`
	SchoolName *string `db:"school_name" json:"school_name,omitempty"`
}

// SKDetail menggabungkan dokumen dengan subjek dan unit kerjanya,
// lengkap seperti yang dibutuhkan renderer.
type SKDetail struct {
	SKDocument
	Guru   *Guru   `json:"guru"`
	School *School `json:"school"`
}

type CreateSKRequest struct {
	JenisSK    string `json:"jenis_sk"`
	GuruID     string `json:"guru_id"`
	SchoolID   string `json:"school_id"`
	TMT        string `json:"tmt"`
	AkhirTugas string `json:"akhir_tugas"`
	ValidUntil string `json:"valid_until"` // format: YYYY-MM-DD, opsional
	Notes      string `json:"notes"`
}

type UpdateSKStatusRequest struct {
	Status string `json:"status"`
}

type SKFilter struct {
	JenisSK  string
	Status   string
	SchoolID string
	Search   string
	Page     int
	PerPage  int
}

// VerifyResponse untuk endpoint publik verifikasi QR
type VerifyResponse struct {
	State    string      `json:"state"` // not_found | valid_active | valid_expired
	IsValid  bool        `json:"is_valid"`
	Document *SKDocument `json:"document,omitempty"`
	Message  string      `json:"message"`
}

const (
	VerifyStateNotFound = "not_found"
	VerifyStateActive   = "valid_active"
	VerifyStateExpired  = "valid_expired"
)
