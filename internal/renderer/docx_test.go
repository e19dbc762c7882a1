package renderer

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

// buildDocx merakit paket DOCX minimal in-memory untuk fixture test.
func buildDocx(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func readDocxPart(t *testing.T, pkg []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		t.Fatalf("open hasil: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("bagian %s tidak ada di hasil", name)
	return ""
}

const minimalContentTypes = `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`
const minimalRels = `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func TestSanitizeRuns(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "token terpecah dua run",
			in:   `<w:t>{qr</w:t></w:r><w:r><w:t>code}</w:t>`,
			want: `<w:t>{qrcode}</w:t>`,
		},
		{
			name: "token terpecah tiga bagian",
			in:   `<w:t>{NA</w:t></w:r><w:r><w:t>M</w:t></w:r><w:r><w:t>A}</w:t>`,
			want: `<w:t>{NAMA}</w:t>`,
		},
		{
			name: "token utuh tidak diubah",
			in:   `<w:t>{NAMA}</w:t>`,
			want: `<w:t>{NAMA}</w:t>`,
		},
		{
			name: "kurung kurawal bukan token dibiarkan",
			in:   `<w:t>{bukan token!</w:t><w:t>tetap}</w:t>`,
			want: `<w:t>{bukan token!</w:t><w:t>tetap}</w:t>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeRuns(tt.in); got != tt.want {
				t.Errorf("SanitizeRuns(%q)\n got  %q\n want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderDocxSubstitution(t *testing.T) {
	doc := `<w:document><w:body><w:p><w:r><w:t>Nama: {NAMA}, Unit: {UNIT}</w:t></w:r></w:p></w:body></w:document>`
	pkg := buildDocx(t, map[string]string{
		"[Content_Types].xml": minimalContentTypes,
		"word/document.xml":   doc,
	})

	out, err := RenderDocx(pkg, map[string]string{"NAMA": "Siti Aminah", "UNIT": "MI Al-Hidayah"}, nil)
	if err != nil {
		t.Fatalf("RenderDocx: %v", err)
	}

	body := readDocxPart(t, out, "word/document.xml")
	if !strings.Contains(body, "Nama: Siti Aminah, Unit: MI Al-Hidayah") {
		t.Errorf("substitusi gagal: %s", body)
	}
}

func TestRenderDocxEscapesValues(t *testing.T) {
	doc := `<w:document><w:body><w:r><w:t>{NAMA}</w:t></w:r></w:body></w:document>`
	pkg := buildDocx(t, map[string]string{"word/document.xml": doc})

	out, err := RenderDocx(pkg, map[string]string{"NAMA": `A & B <Madrasah>`}, nil)
	if err != nil {
		t.Fatalf("RenderDocx: %v", err)
	}

	body := readDocxPart(t, out, "word/document.xml")
	if !strings.Contains(body, "A &amp; B &lt;Madrasah&gt;") {
		t.Errorf("nilai tidak di-escape: %s", body)
	}
}

func TestRenderDocxResidualBlanked(t *testing.T) {
	doc := `<w:document><w:body><w:r><w:t>{NAMA} {TIDAK_DIKENAL}</w:t></w:r></w:body></w:document>`
	pkg := buildDocx(t, map[string]string{"word/document.xml": doc})

	out, err := RenderDocx(pkg, map[string]string{"NAMA": "Ahmad"}, nil)
	if err != nil {
		t.Fatalf("RenderDocx: %v", err)
	}

	body := readDocxPart(t, out, "word/document.xml")
	if strings.Contains(body, "{TIDAK_DIKENAL}") {
		t.Errorf("token tak dikenal masih tersisa: %s", body)
	}
	if !strings.Contains(body, "Ahmad") {
		t.Errorf("substitusi hilang: %s", body)
	}
}

func TestRenderDocxSplitTokenFixed(t *testing.T) {
	// Placeholder terpecah oleh batas run harus tetap tersubstitusi
	doc := `<w:document><w:body><w:r><w:t>{NA</w:t></w:r><w:r><w:t>MA}</w:t></w:r></w:body></w:document>`
	pkg := buildDocx(t, map[string]string{"word/document.xml": doc})

	out, err := RenderDocx(pkg, map[string]string{"NAMA": "Ahmad"}, nil)
	if err != nil {
		t.Fatalf("RenderDocx: %v", err)
	}

	body := readDocxPart(t, out, "word/document.xml")
	if !strings.Contains(body, "Ahmad") {
		t.Errorf("token terpecah tidak tersubstitusi: %s", body)
	}
}

func TestRenderDocxQRInjection(t *testing.T) {
	doc := `<w:document><w:body><w:r><w:t>Verifikasi: {qrcode}</w:t></w:r></w:body></w:document>`
	pkg := buildDocx(t, map[string]string{
		"[Content_Types].xml":          minimalContentTypes,
		"word/_rels/document.xml.rels": minimalRels,
		"word/document.xml":            doc,
	})

	qr := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	out, err := RenderDocx(pkg, nil, qr)
	if err != nil {
		t.Fatalf("RenderDocx: %v", err)
	}

	body := readDocxPart(t, out, "word/document.xml")
	if strings.Contains(strings.ToLower(body), "{qrcode}") {
		t.Errorf("token qrcode masih ada: %s", body)
	}
	if !strings.Contains(body, "w:drawing") {
		t.Errorf("run drawing tidak disisipkan: %s", body)
	}

	media := readDocxPart(t, out, "word/media/qr_verifikasi.png")
	if media != string(qr) {
		t.Errorf("bytes media QR tidak cocok")
	}

	rels := readDocxPart(t, out, "word/_rels/document.xml.rels")
	if !strings.Contains(rels, "media/qr_verifikasi.png") {
		t.Errorf("relationship QR tidak ditambahkan: %s", rels)
	}

	ct := readDocxPart(t, out, "[Content_Types].xml")
	if !strings.Contains(ct, `Extension="png"`) {
		t.Errorf("content type png tidak ditambahkan: %s", ct)
	}
}

func TestRenderDocxQRTokenWithoutImage(t *testing.T) {
	// QR gagal dibuat: token dihapus, dokumen tetap jadi
	doc := `<w:document><w:body><w:r><w:t>{qr_code}</w:t></w:r></w:body></w:document>`
	pkg := buildDocx(t, map[string]string{"word/document.xml": doc})

	out, err := RenderDocx(pkg, nil, nil)
	if err != nil {
		t.Fatalf("RenderDocx: %v", err)
	}

	body := readDocxPart(t, out, "word/document.xml")
	if strings.Contains(strings.ToLower(body), "{qr_code}") {
		t.Errorf("token qr_code masih ada: %s", body)
	}
	if strings.Contains(body, "w:drawing") {
		t.Errorf("drawing tidak seharusnya disisipkan tanpa PNG")
	}
}

func TestRenderDocxRejectsInvalid(t *testing.T) {
	if _, err := RenderDocx([]byte("bukan zip"), nil, nil); err == nil {
		t.Fatal("bytes non-zip harus error")
	}

	// Zip sah tapi tanpa word/document.xml
	pkg := buildDocx(t, map[string]string{"isi.txt": "halo"})
	if _, err := RenderDocx(pkg, nil, nil); err == nil {
		t.Fatal("arsip tanpa document.xml harus error")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		unit string
		want string
	}{
		{"Siti Aminah", "MI Al-Hidayah", "SK_Siti_Aminah_MI_Al-Hidayah.docx"},
		{"", "", "SK_Dokumen_Dokumen.docx"},
		{"Ahmad, S.Pd.", "MTs Negeri 1", "SK_Ahmad_S_Pd_MTs_Negeri_1.docx"},
	}
	for _, tt := range tests {
		if got := FileName(tt.name, tt.unit); got != tt.want {
			t.Errorf("FileName(%q, %q) = %q, want %q", tt.name, tt.unit, got, tt.want)
		}
	}
}
