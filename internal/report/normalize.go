package report

import (
	"strings"
	"unicode"
)

// Normalize: Serbest metin etiketleri karşılaştırma öncesi normalleştirir.
// Baş/son boşlukları atar, Türkçe harf kurallarıyla büyütür (ı -> I,
// i -> İ; ASCII kuralı değil), noktalı/noktasız büyük I'ları tek forma
// indirger ve ardışık boşlukları tek boşluğa düşürür. Operatörler sabit
// sözlükteki etiketleri çoğu zaman i/ı karıştırarak yazdığı için İ/I
// ayrımı anahtar eşitliğinde kasıtlı olarak eritilir. Sadece
// karşılaştırma anahtarı üretir, ekranda gösterilmez.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpperSpecial(unicode.TurkishCase, s)
	s = strings.ReplaceAll(s, "İ", "I")
	return strings.Join(strings.Fields(s), " ")
}
