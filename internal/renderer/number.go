package renderer

import (
	"fmt"
	"strings"
	"time"
)

// Tabel simbol Romawi, subtractive greedy.
var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func ToRoman(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}

// RomanMonth kode bulan Romawi untuk nomor surat (Juli -> VII).
func RomanMonth(m time.Month) string {
	return ToRoman(int(m))
}

// PadSequence format nilai counter otomatis menjadi 4 digit.
func PadSequence(n int) string {
	return fmt.Sprintf("%04d", n)
}

// FormatNumber mengisi format nomor SK. Placeholder yang dikenal:
// {NOMOR} {TANGGAL} {BULAN} {BL_ROMA} {TAHUN}; semua kemunculan diganti,
// teks lain dibiarkan. Nilai nomor dipakai apa adanya — padding counter
// otomatis terjadi di pemanggil lewat PadSequence.
func FormatNumber(format, nomor string, date time.Time) string {
	seq := strings.TrimSpace(nomor)
	// Counter yang belum dikonfigurasi sering terbaca "" atau "...."
	// dari data lama; jangan biarkan merusak nomor akhir.
	if seq == "" || strings.Trim(seq, ".") == "" {
		seq = "0001"
	}

	return strings.NewReplacer(
		"{NOMOR}", seq,
		"{TANGGAL}", fmt.Sprintf("%02d", date.Day()),
		"{BULAN}", fmt.Sprintf("%d", int(date.Month())),
		"{BL_ROMA}", RomanMonth(date.Month()),
		"{TAHUN}", fmt.Sprintf("%04d", date.Year()),
	).Replace(format)
}
