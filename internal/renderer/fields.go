package renderer

import (
	"strconv"
	"strings"
)

// DocumentFields adalah bentuk kanonik semua nilai yang bisa muncul di
// template. Logika inti hanya menyentuh struct ini; ejaan-ejaan lama
// ({Nama}, {NAMA_GURU}, dst) baru difan-out di Projection.
type DocumentFields struct {
	Nama         string
	NIP          string
	NUPTK        string
	NIK          string
	TempatLahir  string
	TanggalLahir Date
	Pendidikan   string
	Status       string
	Jabatan      string
	Unit         string
	Kecamatan    string
	Alamat       string

	Nomor            string
	TanggalPenetapan Date
	TMT              Date
	AkhirTugas       Date
	TahunAjaran      string
	Ketua            string
	Sekretaris       string
}

// legacyAliases memetakan key kanonik ke ejaan lama yang masih hidup di
// template warisan. Template diunggah staf non-teknis bertahun-tahun tanpa
// standar penamaan, jadi semua ejaan tetap dilayani.
var legacyAliases = map[string][]string{
	"NAMA":          {"Nama", "nama", "NAMA_LENGKAP", "NAMA_GURU"},
	"NIP":           {"Nip", "nip"},
	"NUPTK":         {"Nuptk", "nuptk"},
	"NIK":           {"Nik", "nik"},
	"TEMPAT_LAHIR":  {"TMP_LAHIR", "tempat_lahir"},
	"TANGGAL_LAHIR": {"TGL_LAHIR", "tanggal_lahir"},
	"TTL":           {"ttl", "TEMPAT_TGL_LAHIR"},
	"PENDIDIKAN":    {"PENDIDIKAN_TERAKHIR", "pendidikan"},
	"STATUS":        {"STATUS_KEPEGAWAIAN", "status"},
	"JABATAN":       {"Jabatan", "jabatan"},
	"UNIT":          {"MADRASAH", "SEKOLAH", "UNIT_KERJA", "NAMA_MADRASAH", "unit"},
	"KECAMATAN":     {"Kecamatan", "kecamatan"},
	"ALAMAT":        {"Alamat", "alamat"},
	"NOMOR":         {"NOMOR_SK", "NO_SK", "nomor"},
	"TANGGAL":       {"TANGGAL_SK", "TGL_SK", "TANGGAL_PENETAPAN"},
	"TMT":           {"tmt", "TMT_TUGAS"},
	"AKHIR_TUGAS":   {"AKHIR_MASA_TUGAS", "SELESAI_TUGAS"},
	"MASA_BHAKTI":   {"MASA_BAKTI", "masa_bhakti"},
	"TAHUN_AJARAN":  {"TAHUN_PELAJARAN", "TA"},
	"KETUA":         {"KETUA_YAYASAN", "NAMA_KETUA"},
	"SEKRETARIS":    {"NAMA_SEKRETARIS", "SEKRETARIS_YAYASAN"},
}

// Projection membangun map substitusi final. Jaminan: tidak ada key yang
// bernilai kosong — field absen jadi "-" dan nomor yang belum terbit jadi
// "...." supaya engine template tidak pernah menemui nilai hilang.
func (f DocumentFields) Projection() map[string]string {
	canonical := map[string]string{
		"NAMA":          orDash(f.Nama),
		"NIP":           orDash(f.NIP),
		"NUPTK":         orDash(f.NUPTK),
		"NIK":           orDash(f.NIK),
		"TEMPAT_LAHIR":  orDash(f.TempatLahir),
		"TANGGAL_LAHIR": FormatIndonesian(f.TanggalLahir),
		"TTL":           f.ttl(),
		"PENDIDIKAN":    orDash(f.Pendidikan),
		"STATUS":        orDash(f.Status),
		"JABATAN":       orDash(f.Jabatan),
		"UNIT":          orDash(f.Unit),
		"KECAMATAN":     orDash(f.Kecamatan),
		"ALAMAT":        orDash(f.Alamat),
		"NOMOR":         orPlaceholder(f.Nomor, "...."),
		"TANGGAL":       FormatIndonesian(f.TanggalPenetapan),
		"TMT":           FormatIndonesian(f.TMT),
		"AKHIR_TUGAS":   FormatIndonesian(f.AkhirTugas),
		"MASA_BHAKTI":   f.masaBhakti(),
		"TAHUN_AJARAN":  orDash(f.TahunAjaran),
		"KETUA":         orDash(f.Ketua),
		"SEKRETARIS":    orDash(f.Sekretaris),
	}

	out := make(map[string]string, len(canonical)*3)
	for key, val := range canonical {
		out[key] = val
		for _, alias := range legacyAliases[key] {
			out[alias] = val
		}
	}
	return out
}

// ttl gabungan tempat dan tanggal lahir, hanya bila keduanya ada.
func (f DocumentFields) ttl() string {
	place := strings.TrimSpace(f.TempatLahir)
	if place == "" || !f.TanggalLahir.Valid {
		return "-"
	}
	return place + ", " + FormatIndonesian(f.TanggalLahir)
}

// masaBhakti rentang tahun tugas, misal "2021 - 2025".
func (f DocumentFields) masaBhakti() string {
	if !f.TMT.Valid || !f.AkhirTugas.Valid {
		return "-"
	}
	return strconv.Itoa(f.TMT.Year) + " - " + strconv.Itoa(f.AkhirTugas.Year)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return strings.TrimSpace(s)
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return strings.TrimSpace(s)
}
