package report

import (
	"math"
	"reflect"
	"testing"

	"evraktakip-backend/internal/models"
)

func yaklasik(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// %40/%60 iki projeli, 3 seferli evrak: seçili projeye açıklamalar
// 0.4 ağırlıkla kesirli atfedilir.
func TestAttributeToProjeProportional(t *testing.T) {
	d := models.Evrak{
		ID: 1,
		Projeler: []models.EvrakProje{
			{ProjeID: 1, SeferSayisi: 40}, // proje A
			{ProjeID: 2, SeferSayisi: 60}, // proje B
		},
		Seferler: []models.EvrakSefer{
			{Aciklama: "X"},
			{Aciklama: "X"},
			{Aciklama: "Y"},
		},
	}

	got := AttributeToProje([]models.Evrak{d}, 1)

	if got.ToplamSefer != 40 {
		t.Fatalf("ToplamSefer = %d, want 40", got.ToplamSefer)
	}
	if len(got.Satirlar) != 2 {
		t.Fatalf("satır sayısı = %d, want 2", len(got.Satirlar))
	}
	if got.Satirlar[0].Aciklama != "X" || !yaklasik(got.Satirlar[0].Adet, 0.8) {
		t.Errorf("X satırı = %+v, want adet 0.8", got.Satirlar[0])
	}
	if got.Satirlar[1].Aciklama != "Y" || !yaklasik(got.Satirlar[1].Adet, 0.4) {
		t.Errorf("Y satırı = %+v, want adet 0.4", got.Satirlar[1])
	}
	// yüzde, bağımsız hesaplanan ToplamSefer paydasına göre
	if !yaklasik(got.Satirlar[0].Yuzde, 2.0) {
		t.Errorf("X yüzdesi = %v, want 2.0 (0.8/40*100)", got.Satirlar[0].Yuzde)
	}
}

// Evrakların tamamı tek projeye %100 ayrılmışsa kesirli sapma olmamalı:
// toplam, o projeye ayrılan evrakların sefer toplamına, açıklama
// dağılımı da düz sefer sayımına eşit olmalı.
func TestAttributeToProjeConservationSingleProject(t *testing.T) {
	evraklar := []models.Evrak{
		{
			ID:       1,
			Projeler: []models.EvrakProje{{ProjeID: 1, SeferSayisi: 3}},
			Seferler: []models.EvrakSefer{{Aciklama: "X"}, {Aciklama: "X"}, {Aciklama: "Y"}},
		},
		{
			ID:       2,
			Projeler: []models.EvrakProje{{ProjeID: 1, SeferSayisi: 2}},
			Seferler: []models.EvrakSefer{{Aciklama: "Y"}, {Aciklama: "Y"}},
		},
		{
			ID:       3,
			Projeler: []models.EvrakProje{{ProjeID: 2, SeferSayisi: 4}},
			Seferler: []models.EvrakSefer{{Aciklama: "Z"}},
		},
	}

	got := AttributeToProje(evraklar, 1)

	if got.ToplamSefer != 5 {
		t.Fatalf("ToplamSefer = %d, want 5", got.ToplamSefer)
	}
	adetler := map[string]float64{}
	for _, s := range got.Satirlar {
		adetler[s.Aciklama] = s.Adet
	}
	want := map[string]float64{"X": 2, "Y": 3}
	if !reflect.DeepEqual(adetler, want) {
		t.Errorf("açıklama dağılımı = %v, want %v", adetler, want)
	}
}

// Proje dağılımı boş ya da toplamı sıfır olan evrak bölme hatası
// üretmeden tamamen dışarıda kalmalı.
func TestAttributeToProjeZeroDenominator(t *testing.T) {
	evraklar := []models.Evrak{
		{
			ID:       1,
			Projeler: []models.EvrakProje{},
			Seferler: []models.EvrakSefer{{Aciklama: "X"}},
		},
		{
			ID:       2,
			Projeler: []models.EvrakProje{{ProjeID: 1, SeferSayisi: 0}},
			Seferler: []models.EvrakSefer{{Aciklama: "Y"}},
		},
	}

	got := AttributeToProje(evraklar, 1)

	if got.ToplamSefer != 0 {
		t.Errorf("ToplamSefer = %d, want 0", got.ToplamSefer)
	}
	if len(got.Satirlar) != 0 {
		t.Errorf("sıfır paydalı evraklar dağılıma sızdı: %v", got.Satirlar)
	}
}

// Seçili projenin dağılımı olmayan evrak tam 0 katkı yapmalı,
// paydayı da seyreltmemeli.
func TestAttributeToProjeAbsentAllocation(t *testing.T) {
	evraklar := []models.Evrak{
		{
			ID:       1,
			Projeler: []models.EvrakProje{{ProjeID: 2, SeferSayisi: 10}},
			Seferler: []models.EvrakSefer{{Aciklama: "X"}},
		},
		{
			ID:       2,
			Projeler: []models.EvrakProje{{ProjeID: 1, SeferSayisi: 4}},
			Seferler: []models.EvrakSefer{{Aciklama: "X"}},
		},
	}

	got := AttributeToProje(evraklar, 1)

	if got.ToplamSefer != 4 {
		t.Fatalf("ToplamSefer = %d, want 4", got.ToplamSefer)
	}
	if len(got.Satirlar) != 1 || !yaklasik(got.Satirlar[0].Adet, 1) {
		t.Errorf("satırlar = %v, want tek X satırı adet 1", got.Satirlar)
	}
}

// Lokasyon varyantı kesirli paylaştırmaz: seçili lokasyonun
// evraklarının açıklamaları ağırlık 1 ile düz sayılır.
func TestLokasyonAciklamaDagilimiUnweighted(t *testing.T) {
	evraklar := []models.Evrak{
		{
			ID: 1, LokasyonID: 1, ToplamSefer: 5,
			Projeler: []models.EvrakProje{{ProjeID: 1, SeferSayisi: 2}, {ProjeID: 2, SeferSayisi: 3}},
			Seferler: []models.EvrakSefer{{Aciklama: "X"}, {Aciklama: "Y"}},
		},
		{
			ID: 2, LokasyonID: 2, ToplamSefer: 3,
			Seferler: []models.EvrakSefer{{Aciklama: "X"}},
		},
	}

	got := LokasyonAciklamaDagilimi(evraklar, 1)

	if got.ToplamSefer != 5 {
		t.Fatalf("ToplamSefer = %d, want 5", got.ToplamSefer)
	}
	adetler := map[string]float64{}
	for _, s := range got.Satirlar {
		adetler[s.Aciklama] = s.Adet
	}
	// çok projeli bölünmeye rağmen ağırlık 1: X=1, Y=1
	want := map[string]float64{"X": 1, "Y": 1}
	if !reflect.DeepEqual(adetler, want) {
		t.Errorf("açıklama sayımı = %v, want %v", adetler, want)
	}
}
