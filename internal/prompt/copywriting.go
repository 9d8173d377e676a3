package prompt

import (
	"fmt"

	"halalassist-core/internal/domain/entity"
)

// Copywriting asks for three channel-specific ad variants for one product.
func Copywriting(req entity.CopyRequest) string {
	return fmt.Sprintf(`Anda adalah ahli copywriting pemasaran AI yang spesifik untuk produk halal.
Tugas Anda adalah membuat 3 versi iklan yang sangat persuasif dan profesional untuk produk berikut:
Nama Produk: "%s"
Keunggulan: "%s"
Tone: "%s"

WAJIB: Selalu hubungkan dengan jaminan halal resmi untuk membangun kepercayaan konsumen Muslim.

Kirimkan jawaban HANYA dalam format JSON murni tanpa pembuka/penutup markdown.
Struktur JSON:
{
    "instagram": "Teks caption IG lengkap dengan emoji yang relevan dan hashtag populer",
    "whatsapp": "Teks pesan WA yang ramah dengan format bold/italic ala WhatsApp (*teks*, _teks_)",
    "landing": "Teks deskripsi website yang profesional, menjual, dan terpercaya"
}`, req.ProductName, req.Features, req.Tone)
}
