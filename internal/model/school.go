package model

import (
	"time"

	"github.com/google/uuid"
)

type School struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	NSM       string    `db:"nsm"        json:"nsm"` // nomor statistik madrasah
	Kecamatan string    `db:"kecamatan"  json:"kecamatan"`
	Address   string    `db:"address"    json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type SaveSchoolRequest struct {
	Name      string `json:"name"`
	NSM       string `json:"nsm"`
	Kecamatan string `json:"kecamatan"`
	Address   string `json:"address"`
}

type SchoolFilter struct {
	Search    string
	Kecamatan string
	Page      int
	PerPage   int
}
