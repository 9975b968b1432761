package export

import (
	"strings"
	"testing"
)

func ornekRow() TutanakRow {
	return TutanakRow{
		TedarikciAdi: "Yılmaz Nakliyat Ltd. Şti.",
		MusteriAdi:   "Focal Lojistik A.Ş.",
		SevkTarihi:   "2024-03-15",
		EvrakNo:      "EVR-2024-0042",
		YuklemeYeri:  "İstanbul",
		TeslimYeri:   "Ankara",
		PlakaNo:      "34 ABC 123",
		SurucuAdi:    "Mehmet Demir",
		SurucuTC:     "12345678901",
		IrsaliyeNo:   "IRS-7781",
	}
}

// Aynı satır için çıktı bayt bayt aynı olmalı.
func TestRenderTutanakTextDeterministic(t *testing.T) {
	row := ornekRow()
	a := RenderTutanakText(row)
	b := RenderTutanakText(row)
	if a != b {
		t.Fatal("aynı girdi için farklı çıktı üretildi")
	}
}

func TestRenderTutanakTextFields(t *testing.T) {
	metin := RenderTutanakText(ornekRow())

	for _, parca := range []string{
		"15.03.2024", // ISO tarih Türk gösterimine çevrilir
		"Yılmaz Nakliyat Ltd. Şti.",
		"EVR-2024-0042",
		"34 ABC 123",
		"Mehmet Demir",
		"12345678901",
		"IRS-7781",
	} {
		if !strings.Contains(metin, parca) {
			t.Errorf("tutanak metni %q içermiyor", parca)
		}
	}

	paragraflar := strings.Split(metin, "\n\n")
	if len(paragraflar) != 2 {
		t.Errorf("paragraf sayısı = %d, want 2", len(paragraflar))
	}
}

// Boş alanlar "---" işaretiyle basılmalı, asla "null"/"undefined" değil.
func TestRenderTutanakTextMissingFields(t *testing.T) {
	metin := RenderTutanakText(TutanakRow{TedarikciAdi: "Yılmaz Nakliyat"})

	if !strings.Contains(metin, bosAlanIsareti) {
		t.Errorf("boş alan işareti basılmadı: %s", metin)
	}
	for _, yasak := range []string{"null", "undefined", "<nil>"} {
		if strings.Contains(metin, yasak) {
			t.Errorf("tutanak metninde %q var", yasak)
		}
	}
}

func TestBuildTutanakDocx(t *testing.T) {
	docx, err := BuildTutanakDocx(ornekRow())
	if err != nil {
		t.Fatalf("BuildTutanakDocx() error = %v", err)
	}
	// zip imzası "PK\x03\x04"
	if len(docx) < 4 || docx[0] != 'P' || docx[1] != 'K' {
		t.Errorf("docx çıktısı zip imzasıyla başlamıyor")
	}

	tekrar, err := BuildTutanakDocx(ornekRow())
	if err != nil {
		t.Fatalf("ikinci üretim hata verdi: %v", err)
	}
	if len(tekrar) != len(docx) {
		t.Errorf("docx üretimi deterministik değil: %d != %d bayt", len(tekrar), len(docx))
	}
}
