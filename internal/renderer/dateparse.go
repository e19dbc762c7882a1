package renderer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date adalah hasil parse tanggal. Valid false berarti input tidak bisa
// dibaca; pemanggil wajib menampilkan strip, bukan error.
type Date struct {
	Year  int
	Month time.Month
	Day   int
	Valid bool
}

func (d Date) Time() time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day(), Valid: true}
}

// Nama bulan Indonesia, index 0 = Januari.
var monthNames = [12]string{
	"januari", "februari", "maret", "april", "mei", "juni",
	"juli", "agustus", "september", "oktober", "november", "desember",
}

var monthAbbrevs = [12]string{
	"jan", "feb", "mar", "apr", "mei", "jun",
	"jul", "agu", "sep", "okt", "nov", "des",
}

var (
	numericDateRe = regexp.MustCompile(`(\d{1,4})\s*[-/.]\s*(\d{1,2})\s*[-/.]\s*(\d{1,4})`)
	yearRe        = regexp.MustCompile(`\b(\d{4})\b`)
	dayRe         = regexp.MustCompile(`\b(\d{1,2})\b`)
)

var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseFlexible membaca tanggal dari data lama yang formatnya campur aduk:
// ISO, D-M-Y atau M-D-Y dengan pemisah - / ., dan bentuk panjang Indonesia
// ("19 Juli 2007"). Urutan percobaan tetap: ISO dulu, lalu numerik D-M-Y
// (konvensi Indonesia) dengan fallback M-D-Y bila pembacaan pertama tidak
// sah, terakhir pemindaian nama bulan. Tidak pernah mengembalikan error.
func ParseFlexible(raw string) Date {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Date{}
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t)
		}
	}

	if m := numericDateRe.FindStringSubmatch(s); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		c, _ := strconv.Atoi(m[3])

		if len(m[1]) == 4 {
			// Tahun di depan: Y-M-D
			if d, ok := makeDate(a, b, c); ok {
				return d
			}
		} else {
			// D-M-Y dicoba dulu, M-D-Y hanya bila D-M-Y tidak sah.
			// Jangan "perbaiki" urutan ini: data yang sudah terlanjur
			// tersimpan bergantung pada resolusi D-M-Y lebih dulu.
			if d, ok := makeDate(c, b, a); ok {
				return d
			}
			if d, ok := makeDate(c, a, b); ok {
				return d
			}
		}
	}

	return parseLongForm(s)
}

// parseLongForm memindai nama bulan Indonesia lalu mengambil token tahun
// (4 digit) dan hari (1-2 digit) dari sisa teks.
func parseLongForm(s string) Date {
	lower := strings.ToLower(s)

	month := 0
	for i, name := range monthNames {
		if strings.Contains(lower, name) {
			month = i + 1
			break
		}
	}
	if month == 0 {
		for i, abbr := range monthAbbrevs {
			if strings.Contains(lower, abbr) {
				month = i + 1
				break
			}
		}
	}
	if month == 0 {
		return Date{}
	}

	ym := yearRe.FindStringSubmatchIndex(lower)
	if ym == nil {
		return Date{}
	}
	year, _ := strconv.Atoi(lower[ym[2]:ym[3]])

	// Hapus token tahun supaya tidak ikut tertangkap sebagai hari
	rest := lower[:ym[0]] + lower[ym[1]:]
	dm := dayRe.FindStringSubmatch(rest)
	if dm == nil {
		return Date{}
	}
	day, _ := strconv.Atoi(dm[1])

	if d, ok := makeDate(year, month, day); ok {
		return d
	}
	return Date{}
}

// makeDate memvalidasi komponen lewat normalisasi time.Date: 31 Februari
// akan bergeser bulan sehingga ketahuan tidak sah.
func makeDate(year, month, day int) (Date, bool) {
	if year < 1900 || year > 2200 || month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, false
	}
	return Date{Year: year, Month: time.Month(month), Day: day, Valid: true}, true
}

// FormatIndonesian menulis tanggal bentuk panjang, misal "19 Juli 2007".
func FormatIndonesian(d Date) string {
	if !d.Valid {
		return "-"
	}
	name := monthNames[int(d.Month)-1]
	name = strings.ToUpper(name[:1]) + name[1:]
	return strconv.Itoa(d.Day) + " " + name + " " + strconv.Itoa(d.Year)
}
