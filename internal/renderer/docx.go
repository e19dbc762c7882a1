package renderer

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var ErrNotDocx = errors.New("paket template bukan arsip DOCX yang valid")

const (
	docPart          = "word/document.xml"
	docRelsPart      = "word/_rels/document.xml.rels"
	contentTypesPart = "[Content_Types].xml"
	qrMediaPart      = "word/media/qr_verifikasi.png"
	qrRelID          = "rIdSimmaciQR"

	// 100x100 px pada 96 dpi; 1 px = 9525 EMU
	qrExtentEMU = 952500
)

var (
	xmlTagRe = regexp.MustCompile(`<[^>]*>`)

	// Kandidat token yang mungkin terpecah: "{" lalu campuran karakter
	// biasa dan tag XML sampai "}". Editor dokumen suka memecah satu
	// placeholder ke beberapa run sehingga {qrcode} jadi
	// {qr</w:t></w:r><w:r><w:t>code}.
	splitTokenRe = regexp.MustCompile(`\{(?:[^{}<>]|<[^>]*>)*\}`)

	cleanTokenRe   = regexp.MustCompile(`^\{[A-Za-z][A-Za-z0-9_]*\}$`)
	residualRe     = regexp.MustCompile(`\{[A-Za-z][A-Za-z0-9_]*\}`)
	qrTokenRe      = regexp.MustCompile(`(?i)\{qr_?code\}`)
	headerFooterRe = regexp.MustCompile(`^word/(header|footer)\d*\.xml$`)
)

// SanitizeRuns menyatukan kembali token placeholder yang terpecah oleh
// batas run XML. Span yang setelah dibuang tag-nya menjadi token bersih
// diganti dengan token itu; span lain dibiarkan utuh. Tahap ini berdiri
// sendiri supaya bisa diuji dengan fixture korup sintetis.
func SanitizeRuns(xml string) string {
	return splitTokenRe.ReplaceAllStringFunc(xml, func(span string) string {
		if !strings.Contains(span, "<") {
			return span
		}
		clean := xmlTagRe.ReplaceAllString(span, "")
		if cleanTokenRe.MatchString(clean) {
			return clean
		}
		return span
	})
}

type docxPart struct {
	name string
	data []byte
}

// RenderDocx membuka paket template, memperbaiki token terpecah, mengganti
// {qrcode} dengan gambar QR, menjalankan substitusi map nilai, lalu menulis
// ulang arsip. Token yang tidak punya nilai dikosongkan, tidak error.
// Tidak ada output parsial: hasil hanya dikembalikan bila seluruh tahap
// berhasil.
func RenderDocx(template []byte, values map[string]string, qrPNG []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, ErrNotDocx
	}

	parts := make([]docxPart, 0, len(zr.File))
	hasDocument := false
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("membaca bagian %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("membaca bagian %s: %w", f.Name, err)
		}
		if f.Name == docPart {
			hasDocument = true
		}
		parts = append(parts, docxPart{name: f.Name, data: data})
	}
	if !hasDocument {
		return nil, ErrNotDocx
	}

	embedQR := false
	for i := range parts {
		name := parts[i].name
		if name != docPart && !headerFooterRe.MatchString(name) {
			continue
		}

		s := SanitizeRuns(string(parts[i].data))

		if name == docPart && qrTokenRe.MatchString(s) {
			if len(qrPNG) > 0 {
				s = qrTokenRe.ReplaceAllString(s, qrDrawingRun())
				embedQR = true
			} else {
				s = qrTokenRe.ReplaceAllString(s, "")
			}
		}

		s = substitute(s, values)
		s = residualRe.ReplaceAllString(s, "")
		parts[i].data = []byte(s)
	}

	if embedQR {
		parts = injectQRImage(parts, qrPNG)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("menulis bagian %s: %w", p.name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			zw.Close()
			return nil, fmt.Errorf("menulis bagian %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("menutup arsip hasil: %w", err)
	}
	return buf.Bytes(), nil
}

var xmlValueEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;",
)

func substitute(s string, values map[string]string) string {
	if len(values) == 0 {
		return s
	}
	pairs := make([]string, 0, len(values)*2)
	for key, val := range values {
		pairs = append(pairs, "{"+key+"}", xmlValueEscaper.Replace(val))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// injectQRImage menambahkan PNG QR sebagai media baru beserta relationship
// dan content type yang dibutuhkan referensi r:embed di body dokumen.
func injectQRImage(parts []docxPart, qrPNG []byte) []docxPart {
	hasRels := false
	for i := range parts {
		switch parts[i].name {
		case docRelsPart:
			parts[i].data = withQRRelationship(parts[i].data)
			hasRels = true
		case contentTypesPart:
			parts[i].data = withPNGContentType(parts[i].data)
		}
	}
	if !hasRels {
		empty := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`
		parts = append(parts, docxPart{name: docRelsPart, data: withQRRelationship([]byte(empty))})
	}
	return append(parts, docxPart{name: qrMediaPart, data: qrPNG})
}

func withQRRelationship(rels []byte) []byte {
	s := string(rels)
	if strings.Contains(s, qrRelID) {
		return rels
	}
	rel := `<Relationship Id="` + qrRelID + `" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/qr_verifikasi.png"/>`
	i := strings.LastIndex(s, "</Relationships>")
	if i < 0 {
		return rels
	}
	return []byte(s[:i] + rel + s[i:])
}

func withPNGContentType(ct []byte) []byte {
	s := string(ct)
	if strings.Contains(s, `Extension="png"`) {
		return ct
	}
	def := `<Default Extension="png" ContentType="image/png"/>`
	i := strings.LastIndex(s, "</Types>")
	if i < 0 {
		return ct
	}
	return []byte(s[:i] + def + s[i:])
}

// qrDrawingRun membangun run gambar inline menggantikan token {qrcode}.
// Token berada di dalam w:t, jadi run teks yang sedang berjalan ditutup
// dulu, run drawing disisipkan, lalu run teks baru dibuka. Namespace
// dideklarasikan inline agar tidak bergantung pada deklarasi root dokumen.
func qrDrawingRun() string {
	return `</w:t></w:r><w:r><w:drawing>` +
		fmt.Sprintf(`<wp:inline distT="0" distB="0" distL="0" distR="0" xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing">`+
			`<wp:extent cx="%d" cy="%d"/>`+
			`<wp:docPr id="9901" name="QR Verifikasi"/>`+
			`<a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">`+
			`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
			`<pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
			`<pic:nvPicPr><pic:cNvPr id="9901" name="qr_verifikasi.png"/><pic:cNvPicPr/></pic:nvPicPr>`+
			`<pic:blipFill><a:blip r:embed="%s" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
			`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
			`</pic:pic></a:graphicData></a:graphic></wp:inline>`,
			qrExtentEMU, qrExtentEMU, qrRelID, qrExtentEMU, qrExtentEMU) +
		`</w:drawing></w:r><w:r><w:t xml:space="preserve">`
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// FileName nama file unduhan deterministik: SK_{nama}_{unit}.docx
func FileName(name, unit string) string {
	return fmt.Sprintf("SK_%s_%s.docx", sanitizeFileName(name), sanitizeFileName(unit))
}

func sanitizeFileName(s string) string {
	s = unsafeFileChars.ReplaceAllString(strings.TrimSpace(s), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "Dokumen"
	}
	return s
}
