// Package prompt holds the pure builders that turn a structured request into
// the instruction text sent upstream. Every builder embeds the exact output
// shape the extractor relies on. No I/O, no shared state.
package prompt

import "fmt"

// CertificateCheck asks for registry-style data about a finished product.
// The model is instructed to never leave the certificate number empty; a
// correctly formatted simulated number is acceptable upstream behavior.
func CertificateCheck(query string) string {
	return fmt.Sprintf(`Anda adalah petugas verifikasi sertifikasi halal BPJPH. Tugas Anda adalah memberikan DATA RESMI dari database sertifikasi halal Indonesia untuk: "%s".

KRITERIA WAJIB:
1. Carilah NAMA PRODUSEN/PT YANG SEBENARNYA dari produk tersebut (Contoh: "Indomie" -> "PT Indofood CBP Sukses Makmur Tbk"). JANGAN RANDOM.
2. Carilah NOMOR ID HALAL (ID31...) yang terdaftar untuk produk tersebut. Jika Anda tidak memiliki nomor persisnya, berikan nomor ID simulasi yang memiliki format BENAR (ID + 15 angka) dan terlihat resmi. JANGAN KOSONG atau N/A.
3. Berikan "Tanggal Terbit" yang akurat atau simulasi realistis (Contoh: "15 Januari 2024").

Format Output (JSON):
{
    "status": "halal" | "warning" | "haram",
    "halalId": "NOMOR ID SERTIFIKAT (TIDAK BOLEH N/A)",
    "analysis": "Penjelasan detail mengenai status kehalalan produk",
    "producer": "NAMA PT/PERUSAHAAN RESMI (WAJIB)",
    "lphName": "NAMA LPH/LEMBAGA PEMERIKSA HALAL (Contoh: LPPOM MUI, LPH Kemenag, dll)",
    "issueDate": "TANGGAL TERBIT (WAJIB)",
    "recommendation": "Saran verifikasi resmi"
}
Balas HANYA JSON murni.`, query)
}

// IngredientAudit asks for a critical-point analysis of a single material.
func IngredientAudit(query string) string {
	return fmt.Sprintf(`Anda adalah ahli audit halal teknis. Analisislah kehalalan dari bahan/zat berikut: "%s" secara mendalam (titik kritis).
Jelaskan sumber asal bahan (nabati, hewani, sintetik) dan potensi kontaminasi haram.

Berikan jawaban dalam format JSON:
{
    "status": "halal" | "warning" | "haram",
    "analysis": "Penjelasan teknis mengenai kehalalan bahan ini",
    "criticalPoints": ["titik kritis 1", "titik kritis 2"],
    "recommendation": "Saran untuk penggunaan bahan ini dalam industri"
}
Balas HANYA JSON murni.`, query)
}
