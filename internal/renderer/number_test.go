package renderer

import (
	"testing"
	"time"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "I"}, {2, "II"}, {3, "III"}, {4, "IV"}, {5, "V"},
		{6, "VI"}, {7, "VII"}, {8, "VIII"}, {9, "IX"}, {10, "X"},
		{11, "XI"}, {12, "XII"},
		{14, "XIV"}, {40, "XL"}, {1999, "MCMXCIX"},
		{0, ""}, {-3, ""},
	}

	for _, tt := range tests {
		if got := ToRoman(tt.in); got != tt.want {
			t.Errorf("ToRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRomanMonth(t *testing.T) {
	if got := RomanMonth(time.July); got != "VII" {
		t.Errorf("RomanMonth(Juli) = %q, want VII", got)
	}
	if got := RomanMonth(time.December); got != "XII" {
		t.Errorf("RomanMonth(Desember) = %q, want XII", got)
	}
}

func TestPadSequence(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "0001"},
		{7, "0007"},
		{123, "0123"},
		{12345, "12345"},
	}
	for _, tt := range tests {
		if got := PadSequence(tt.in); got != tt.want {
			t.Errorf("PadSequence(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	juli := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		format string
		nomor  string
		date   time.Time
		want   string
	}{
		{
			name:   "format yayasan lengkap",
			format: "{NOMOR}/PC.L/A.II/H-34.B/{BULAN}/{TAHUN}",
			nomor:  "0007",
			date:   juli,
			want:   "0007/PC.L/A.II/H-34.B/7/2025",
		},
		{
			name:   "nomor kosong jadi 0001",
			format: "{NOMOR}/{BL_ROMA}/{TAHUN}",
			nomor:  "",
			date:   juli,
			want:   "0001/VII/2025",
		},
		{
			name:   "nomor titik-titik jadi 0001",
			format: "{NOMOR}/{TAHUN}",
			nomor:  "....",
			date:   juli,
			want:   "0001/2025",
		},
		{
			name:   "tanggal dua digit dan bulan romawi",
			format: "{TANGGAL}/{BL_ROMA}",
			nomor:  "0001",
			date:   time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local),
			want:   "05/III",
		},
		{
			name:   "teks tanpa placeholder tidak disentuh",
			format: "SK/TETAP/PC.L",
			nomor:  "0009",
			date:   juli,
			want:   "SK/TETAP/PC.L",
		},
		{
			name:   "placeholder berulang diganti semua",
			format: "{TAHUN}-{TAHUN}",
			nomor:  "0001",
			date:   juli,
			want:   "2025-2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.format, tt.nomor, tt.date); got != tt.want {
				t.Errorf("FormatNumber(%q, %q) = %q, want %q", tt.format, tt.nomor, got, tt.want)
			}
		})
	}
}

// Hasil format tidak mengandung placeholder lagi, jadi memformat ulang
// string hasil tidak mengubah apa pun.
func TestFormatNumberIdempotent(t *testing.T) {
	date := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local)
	first := FormatNumber("{NOMOR}/PC.L/A.II/H-34.B/{BULAN}/{TAHUN}", "0007", date)
	second := FormatNumber(first, "9999", date)
	if first != second {
		t.Errorf("format ulang mengubah hasil: %q -> %q", first, second)
	}
}
