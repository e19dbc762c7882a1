package renderer

import (
	"log"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Ukuran sumber QR dalam piksel; di dokumen dirender 100x100.
const qrSourceSize = 400

// VerificationURL membentuk link verifikasi publik untuk satu dokumen.
func VerificationURL(origin, documentID string) string {
	return strings.TrimRight(origin, "/") + "/verify/" + documentID
}

// VerificationQR encode URL verifikasi jadi PNG. Kegagalan encoding tidak
// boleh menggagalkan pembuatan dokumen: SK tanpa QR masih lebih berguna
// daripada tidak ada SK sama sekali, jadi error hanya dicatat.
func VerificationQR(url string) []byte {
	png, err := qrcode.Encode(url, qrcode.Medium, qrSourceSize)
	if err != nil {
		log.Printf("gagal generate QR untuk %s: %v", url, err)
		return nil
	}
	return png
}
