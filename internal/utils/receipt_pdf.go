package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptData isi tanda terima penyerahan SK satu halaman.
type ReceiptData struct {
	Nomor      string
	JenisSK    string
	GuruName   string
	NIP        string
	SchoolName string
	IssuedAt   time.Time
	KetuaName  string
	QRCodePNG  []byte // QR verifikasi sebagai bytes PNG, boleh kosong
}

var bulanIndo = [...]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// BuildReceiptPDF menyusun tanda terima SK untuk arsip yayasan. Dokumen
// SK-nya sendiri berbentuk DOCX; tanda terima ini hanya bukti serah terima.
func BuildReceiptPDF(data ReceiptData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Kop
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 8, "YAYASAN PENDIDIKAN SIMMACI", "", 1, "C", false, 0, "")

	pdf.SetDrawColor(0, 51, 102)
	pdf.SetLineWidth(0.8)
	pdf.Line(20, pdf.GetY()+3, 190, pdf.GetY()+3)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "TANDA TERIMA SURAT KEPUTUSAN", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Nomor SK: %s", data.Nomor), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.MultiCell(0, 6,
		"Telah diserahkan Surat Keputusan dengan rincian sebagai berikut:",
		"", "L", false)
	pdf.Ln(3)

	rows := [][]string{
		{"Jenis SK", data.JenisSK},
		{"Nama Penerima", data.GuruName},
		{"NIP", orDashPDF(data.NIP)},
		{"Unit Kerja", orDashPDF(data.SchoolName)},
	}
	for _, row := range rows {
		pdf.CellFormat(50, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(5, 6, ":", "", 0, "C", false, 0, "")
		pdf.CellFormat(120, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.MultiCell(0, 6,
		"Penerima menyatakan telah menerima dokumen asli SK tersebut dalam keadaan lengkap.",
		"", "L", false)
	pdf.Ln(6)

	tanggal := fmt.Sprintf("%d %s %d",
		data.IssuedAt.Day(),
		bulanIndo[data.IssuedAt.Month()],
		data.IssuedAt.Year(),
	)

	currentY := pdf.GetY()

	if len(data.QRCodePNG) > 0 {
		pdf.SetFont("Arial", "", 8)
		pdf.SetXY(20, currentY)
		pdf.CellFormat(40, 5, "Scan untuk verifikasi:", "", 1, "L", false, 0, "")

		qrReader := bytes.NewReader(data.QRCodePNG)
		pdf.RegisterImageOptionsReader("qr_terima", gofpdf.ImageOptions{ImageType: "PNG"}, qrReader)
		pdf.ImageOptions("qr_terima", 20, currentY+6, 30, 30, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	// Dua kolom tanda tangan: penerima kiri bawah QR, ketua kanan
	signX := 125.0
	pdf.SetXY(signX, currentY)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(65, 5, fmt.Sprintf("Diserahkan, %s", tanggal), "", 1, "C", false, 0, "")
	pdf.SetX(signX)
	pdf.CellFormat(65, 5, "Ketua Yayasan,", "", 1, "C", false, 0, "")
	pdf.Ln(18)
	pdf.SetX(signX)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(65, 5, orDashPDF(data.KetuaName), "", 1, "C", false, 0, "")

	pdf.SetXY(20, pdf.GetY()+8)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(65, 5, "Penerima,", "", 1, "L", false, 0, "")
	pdf.Ln(18)
	pdf.SetX(20)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(65, 5, data.GuruName, "", 1, "L", false, 0, "")

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 7)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5,
		fmt.Sprintf("Dicetak %s | Keaslian SK dapat dicek lewat QR Code", time.Now().Format("02/01/2006 15:04")),
		"", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gagal membuat PDF tanda terima: %w", err)
	}
	return buf.Bytes(), nil
}

func orDashPDF(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
