package model

import (
	"time"

	"github.com/google/uuid"
)

// Guru adalah data induk pendidik/calon kepala madrasah. Field tanggal
// (lahir, TMT) disimpan apa adanya sebagai teks karena data impor lama
// memakai banyak format; normalisasi terjadi di renderer, bukan di sini.
type Guru struct {
	ID              uuid.UUID  `db:"id"               json:"id"`
	FullName        string     `db:"full_name"        json:"full_name"`
	NIP             string     `db:"nip"              json:"nip"`
	NUPTK           string     `db:"nuptk"            json:"nuptk"`
	NIK             string     `db:"nik"              json:"nik"`
	BirthPlace      string     `db:"birth_place"      json:"birth_place"`
	BirthDate       string     `db:"birth_date"       json:"birth_date"` // teks bebas, multi format
	LastEducation   string     `db:"last_education"   json:"last_education"`
	EmployeeStatus  string     `db:"employee_status"  json:"employee_status"` // PNS / GTY / GTT / honorer
	Jabatan         string     `db:"jabatan"          json:"jabatan"`
	SchoolID        *uuid.UUID `db:"school_id"        json:"school_id"`
	TMT             string     `db:"tmt"              json:"tmt"` // tanggal mulai tugas, teks bebas
	CreatedAt       time.Time  `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"       json:"updated_at"`

	// Join fields
	SchoolName      *string `db:"school_name"      json:"school_name,omitempty"`
	SchoolKecamatan *string `db:"school_kecamatan" json:"school_kecamatan,omitempty"`
}

type SaveGuruRequest struct {
	FullName       string `json:"full_name"`
	NIP            string `json:"nip"`
	NUPTK          string `json:"nuptk"`
	NIK            string `json:"nik"`
	BirthPlace     string `json:"birth_place"`
	BirthDate      string `json:"birth_date"`
	LastEducation  string `json:"last_education"`
	EmployeeStatus string `json:"employee_status"`
	Jabatan        string `json:"jabatan"`
	SchoolID       string `json:"school_id"`
	TMT            string `json:"tmt"`
}

type GuruFilter struct {
	Search   string
	SchoolID string
	Status   string
	Page     int
	PerPage  int
}
