package renderer

import "strings"

// Key logis template di blob store. Satu key = satu paket DOCX.
const (
	TemplateKeyKamadPLT    = "sk_template_kamad_plt"
	TemplateKeyKamadPNS    = "sk_template_kamad_pns"
	TemplateKeyKamadNonPNS = "sk_template_kamad_nonpns"
	TemplateKeyKamad       = "sk_template_kamad"
	TemplateKeyGTY         = "sk_template_gty"
	TemplateKeyGTT         = "sk_template_gtt"
	TemplateKeyGuru        = "sk_template_guru"
)

// SelectorInput atribut subjek yang menentukan pemilihan template.
type SelectorInput struct {
	Jenis      string // jenis SK, ejaan/kapitalisasi bebas
	Jabatan    string
	NationalID string // NIP saja, boleh dengan spasi atau strip
	Status     string // status kepegawaian
}

// SelectTemplateKey memetakan jenis SK ke key template. Pola kepala
// madrasah dicek sebelum pola guru karena "kepala" bisa muncul bersama
// "guru" dalam satu jenis. Untuk kamad, cabang PLT menang atas PNS.
func SelectTemplateKey(in SelectorInput) string {
	jenis := strings.ToLower(in.Jenis)

	if strings.Contains(jenis, "kamad") || strings.Contains(jenis, "kepala") {
		jabatan := strings.ToLower(in.Jabatan)
		if strings.Contains(jabatan, "plt") || strings.Contains(jabatan, "pelaksana") {
			return TemplateKeyKamadPLT
		}
		if isPNS(in.NationalID, in.Status) {
			return TemplateKeyKamadPNS
		}
		return TemplateKeyKamadNonPNS
	}

	if strings.Contains(jenis, "gty") || strings.Contains(jenis, "tetap yayasan") {
		return TemplateKeyGTY
	}
	if strings.Contains(jenis, "gtt") || strings.Contains(jenis, "tidak tetap") {
		return TemplateKeyGTT
	}

	return TemplateKeyGuru
}

// FallbackTemplateKey key cadangan untuk kategori yang sama bila key
// utama belum punya blob tersimpan.
func FallbackTemplateKey(key string) (string, bool) {
	switch key {
	case TemplateKeyKamadPLT, TemplateKeyKamadPNS, TemplateKeyKamadNonPNS:
		return TemplateKeyKamad, true
	case TemplateKeyGTY, TemplateKeyGTT:
		return TemplateKeyGuru, true
	}
	return "", false
}

// CategoryScope kategori lebar untuk scope penomoran (kamad / guru).
func CategoryScope(jenis string) string {
	j := strings.ToLower(jenis)
	if strings.Contains(j, "kamad") || strings.Contains(j, "kepala") {
		return "kamad"
	}
	return "guru"
}

// isPNS: NIP asli (setelah dibersihkan jadi digit saja) lebih panjang dari
// 10 digit, atau status kepegawaian menyebut PNS/ASN.
func isPNS(nationalID, status string) bool {
	digits := 0
	for _, r := range nationalID {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits > 10 {
		return true
	}

	st := strings.ToUpper(status)
	return strings.Contains(st, "PNS") || strings.Contains(st, "ASN")
}
