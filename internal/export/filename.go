package export

import "strings"

// turkceKarakterler: Türkçe karakterleri ASCII karşılıklarına çevirir.
// Örn: "ÇİMENTO ŞİRKETİ" -> "CIMENTO SIRKETI"
var turkceKarakterler = map[rune]string{
	'ç': "c", 'Ç': "C",
	'ğ': "g", 'Ğ': "G",
	'ı': "i", 'İ': "I",
	'ö': "o", 'Ö': "O",
	'ş': "s", 'Ş': "S",
	'ü': "u", 'Ü': "U",
}

// SanitizeFileName: Tedarikçi/evrak/plaka alanlarından indirme dosya adı
// üretirken Türkçe karakterleri ASCII'ye çevirir, boşlukları alt çizgi
// yapar ve dosya sisteminde geçersiz karakterleri atar. Temizlik
// sonrası geriye hiçbir şey kalmazsa boş string döner.
func SanitizeFileName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if ascii, ok := turkceKarakterler[r]; ok {
			b.WriteString(ascii)
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
		// diğer her şey (/, \, :, *, ?, ", <, >, |, ascii dışı) atılır
	}
	return strings.Trim(b.String(), "._")
}

// TutanakDosyaAdi: Tek tutanağın .docx dosya adı:
// tedarikçi + evrak no + plaka parçalarından üretilir.
func TutanakDosyaAdi(row TutanakRow) string {
	parcalar := make([]string, 0, 3)
	for _, p := range []string{row.TedarikciAdi, row.EvrakNo, row.PlakaNo} {
		if t := SanitizeFileName(p); t != "" {
			parcalar = append(parcalar, t)
		}
	}
	if len(parcalar) == 0 {
		return "tutanak.docx"
	}
	return "tutanak_" + strings.Join(parcalar, "_") + ".docx"
}
