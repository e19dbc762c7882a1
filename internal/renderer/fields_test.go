package renderer

import (
	"testing"
	"time"
)

func TestProjectionNoEmptyValues(t *testing.T) {
	// Semua field absen: setiap key tetap punya nilai, bukan string kosong
	proj := DocumentFields{}.Projection()

	for key, val := range proj {
		if val == "" {
			t.Errorf("key %q bernilai kosong", key)
		}
	}

	if proj["NAMA"] != "-" {
		t.Errorf("NAMA absen = %q, want -", proj["NAMA"])
	}
	if proj["NOMOR"] != "...." {
		t.Errorf("NOMOR absen = %q, want ....", proj["NOMOR"])
	}
	if proj["TANGGAL_LAHIR"] != "-" {
		t.Errorf("TANGGAL_LAHIR absen = %q, want -", proj["TANGGAL_LAHIR"])
	}
}

func TestProjectionAliases(t *testing.T) {
	f := DocumentFields{
		Nama:  "Siti Aminah",
		Unit:  "MI Al-Hidayah",
		Nomor: "0007/PC.L/A.II/H-34.B/7/2025",
	}
	proj := f.Projection()

	// Semua ejaan lama menerima nilai yang sama dengan key kanonik
	for _, alias := range []string{"NAMA", "Nama", "nama", "NAMA_LENGKAP", "NAMA_GURU"} {
		if proj[alias] != "Siti Aminah" {
			t.Errorf("proj[%q] = %q, want Siti Aminah", alias, proj[alias])
		}
	}
	for _, alias := range []string{"UNIT", "MADRASAH", "SEKOLAH", "UNIT_KERJA", "NAMA_MADRASAH"} {
		if proj[alias] != "MI Al-Hidayah" {
			t.Errorf("proj[%q] = %q, want MI Al-Hidayah", alias, proj[alias])
		}
	}
	for _, alias := range []string{"NOMOR", "NOMOR_SK", "NO_SK"} {
		if proj[alias] != "0007/PC.L/A.II/H-34.B/7/2025" {
			t.Errorf("proj[%q] = %q", alias, proj[alias])
		}
	}
}

func TestProjectionTTL(t *testing.T) {
	lahir := Date{1985, time.March, 12, true}

	full := DocumentFields{TempatLahir: "Lamongan", TanggalLahir: lahir}
	if got := full.Projection()["TTL"]; got != "Lamongan, 12 Maret 1985" {
		t.Errorf("TTL = %q", got)
	}

	// Salah satu komponen hilang: strip, bukan gabungan setengah jadi
	noPlace := DocumentFields{TanggalLahir: lahir}
	if got := noPlace.Projection()["TTL"]; got != "-" {
		t.Errorf("TTL tanpa tempat = %q, want -", got)
	}
	noDate := DocumentFields{TempatLahir: "Lamongan"}
	if got := noDate.Projection()["TTL"]; got != "-" {
		t.Errorf("TTL tanpa tanggal = %q, want -", got)
	}
}

func TestProjectionMasaBhakti(t *testing.T) {
	f := DocumentFields{
		TMT:        Date{2021, time.July, 1, true},
		AkhirTugas: Date{2025, time.June, 30, true},
	}
	if got := f.Projection()["MASA_BHAKTI"]; got != "2021 - 2025" {
		t.Errorf("MASA_BHAKTI = %q, want 2021 - 2025", got)
	}

	partial := DocumentFields{TMT: Date{2021, time.July, 1, true}}
	if got := partial.Projection()["MASA_BHAKTI"]; got != "-" {
		t.Errorf("MASA_BHAKTI sebagian = %q, want -", got)
	}
}

func TestProjectionTrimsWhitespace(t *testing.T) {
	f := DocumentFields{Nama: "  Ahmad  ", NIP: "   "}
	proj := f.Projection()
	if proj["NAMA"] != "Ahmad" {
		t.Errorf("NAMA = %q, want Ahmad", proj["NAMA"])
	}
	if proj["NIP"] != "-" {
		t.Errorf("NIP spasi = %q, want -", proj["NIP"])
	}
}
