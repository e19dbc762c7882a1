package renderer

import "testing"

func TestSelectTemplateKey(t *testing.T) {
	tests := []struct {
		name string
		in   SelectorInput
		want string
	}{
		{
			name: "guru tetap yayasan",
			in:   SelectorInput{Jenis: "SK GTY"},
			want: TemplateKeyGTY,
		},
		{
			name: "guru tidak tetap ejaan panjang",
			in:   SelectorInput{Jenis: "SK Guru Tidak Tetap"},
			want: TemplateKeyGTT,
		},
		{
			name: "jenis tak dikenal jatuh ke guru umum",
			in:   SelectorInput{Jenis: "SK Pembagian Tugas"},
			want: TemplateKeyGuru,
		},
		{
			name: "kamad PNS lewat NIP panjang",
			in:   SelectorInput{Jenis: "SK Kepala Madrasah", NationalID: "196512341987031001"},
			want: TemplateKeyKamadPNS,
		},
		{
			name: "kamad PNS lewat status",
			in:   SelectorInput{Jenis: "SK Kamad", NationalID: "12345", Status: "PNS"},
			want: TemplateKeyKamadPNS,
		},
		{
			name: "kamad non-PNS",
			in:   SelectorInput{Jenis: "SK Kepala Madrasah", NationalID: "0123456789", Status: "GTY"},
			want: TemplateKeyKamadNonPNS,
		},
		{
			name: "kamad non-PNS tanpa NIP",
			in:   SelectorInput{Jenis: "SK Kepala Madrasah", NationalID: "", Status: "GTY"},
			want: TemplateKeyKamadNonPNS,
		},
		{
			name: "PLT menang atas PNS",
			in: SelectorInput{
				Jenis:      "SK Kepala Madrasah PLT",
				Jabatan:    "Plt. Kepala Madrasah",
				NationalID: "196512341987031001",
				Status:     "PNS",
			},
			want: TemplateKeyKamadPLT,
		},
		{
			name: "pelaksana tugas juga PLT",
			in:   SelectorInput{Jenis: "SK Kamad", Jabatan: "Pelaksana Tugas Kepala"},
			want: TemplateKeyKamadPLT,
		},
		{
			name: "kepala dicek sebelum guru",
			in:   SelectorInput{Jenis: "SK Guru / Kepala Madrasah", Status: "ASN"},
			want: TemplateKeyKamadPNS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectTemplateKey(tt.in); got != tt.want {
				t.Errorf("SelectTemplateKey(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFallbackTemplateKey(t *testing.T) {
	tests := []struct {
		key      string
		fallback string
		ok       bool
	}{
		{TemplateKeyKamadPLT, TemplateKeyKamad, true},
		{TemplateKeyKamadPNS, TemplateKeyKamad, true},
		{TemplateKeyKamadNonPNS, TemplateKeyKamad, true},
		{TemplateKeyGTY, TemplateKeyGuru, true},
		{TemplateKeyGTT, TemplateKeyGuru, true},
		{TemplateKeyGuru, "", false},
		{TemplateKeyKamad, "", false},
	}

	for _, tt := range tests {
		got, ok := FallbackTemplateKey(tt.key)
		if got != tt.fallback || ok != tt.ok {
			t.Errorf("FallbackTemplateKey(%q) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.fallback, tt.ok)
		}
	}
}

func TestCategoryScope(t *testing.T) {
	tests := []struct {
		jenis string
		want  string
	}{
		{"SK Kepala Madrasah", "kamad"},
		{"SK Kamad PLT", "kamad"},
		{"SK GTY", "guru"},
		{"SK GTT", "guru"},
		{"", "guru"},
	}
	for _, tt := range tests {
		if got := CategoryScope(tt.jenis); got != tt.want {
			t.Errorf("CategoryScope(%q) = %q, want %q", tt.jenis, got, tt.want)
		}
	}
}
