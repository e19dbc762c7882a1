package renderer

import (
	"testing"
	"time"
)

func TestParseFlexible(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Date
	}{
		{"ISO", "2007-07-19", Date{2007, time.July, 19, true}},
		{"ISO dengan slash", "2007/07/19", Date{2007, time.July, 19, true}},
		{"ISO datetime", "2007-07-19 08:30:00", Date{2007, time.July, 19, true}},
		{"DD-MM-YYYY", "19-07-2007", Date{2007, time.July, 19, true}},
		{"DD/MM/YYYY", "19/07/2007", Date{2007, time.July, 19, true}},
		{"DD.MM.YYYY", "19.07.2007", Date{2007, time.July, 19, true}},
		{"bentuk panjang Indonesia", "19 Juli 2007", Date{2007, time.July, 19, true}},
		{"bentuk panjang kapital", "19 JULI 2007", Date{2007, time.July, 19, true}},
		{"singkatan bulan", "19 Jul 2007", Date{2007, time.July, 19, true}},
		{"spasi di sekitar pemisah", "19 - 07 - 2007", Date{2007, time.July, 19, true}},
		{"kosong", "", Date{}},
		{"teks acak", "belum diketahui", Date{}},
		{"hanya bulan tanpa tahun", "Juli", Date{}},
		{"tanggal tidak sah", "31-02-2007", Date{}},
		{"tahun di luar rentang", "19-07-1566", Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlexible(tt.in)
			if got != tt.want {
				t.Errorf("ParseFlexible(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// Ambiguitas numerik: pembacaan D-M-Y menang bila sah, M-D-Y hanya dipakai
// bila pembacaan pertama tidak mungkin.
func TestParseFlexibleOrder(t *testing.T) {
	// 05-07-2007: dua-duanya sah, D-M-Y menang -> 5 Juli
	got := ParseFlexible("05-07-2007")
	want := Date{2007, time.July, 5, true}
	if got != want {
		t.Fatalf("ParseFlexible(05-07-2007) = %+v, want %+v (D-M-Y dulu)", got, want)
	}

	// 07/19/2007: 19 bukan bulan, jatuh ke M-D-Y -> 19 Juli
	got = ParseFlexible("07/19/2007")
	want = Date{2007, time.July, 19, true}
	if got != want {
		t.Fatalf("ParseFlexible(07/19/2007) = %+v, want %+v (fallback M-D-Y)", got, want)
	}
}

func TestFormatIndonesian(t *testing.T) {
	tests := []struct {
		name string
		in   Date
		want string
	}{
		{"tanggal sah", Date{2007, time.July, 19, true}, "19 Juli 2007"},
		{"awal tahun", Date{2025, time.January, 1, true}, "1 Januari 2025"},
		{"tidak sah jadi strip", Date{}, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatIndonesian(tt.in); got != tt.want {
				t.Errorf("FormatIndonesian(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Round-trip: tulis bentuk panjang lalu baca lagi.
func TestIndonesianRoundTrip(t *testing.T) {
	orig := Date{2021, time.August, 17, true}
	back := ParseFlexible(FormatIndonesian(orig))
	if back != orig {
		t.Errorf("round trip %+v -> %+v", orig, back)
	}
}
