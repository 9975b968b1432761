package report

import (
	"reflect"
	"testing"

	"evraktakip-backend/internal/models"
)

func TestAggregateByLokasyon(t *testing.T) {
	evraklar := []models.Evrak{
		{ID: 1, LokasyonID: 1, ToplamSefer: 5},
		{ID: 2, LokasyonID: 1, ToplamSefer: 3},
		{ID: 3, LokasyonID: 2, ToplamSefer: 7},
	}
	adlar := map[uint]string{1: "İstanbul", 2: "İzmir"}

	got := AggregateByLokasyon(evraklar, adlar)
	want := []KeyTotal{
		{Key: "İstanbul", Toplam: 8},
		{Key: "İzmir", Toplam: 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AggregateByLokasyon() = %v, want %v", got, want)
	}
}

// Tanınmayan lokasyon id'si hata üretmeden atlanmalı.
func TestAggregateByLokasyonUnknownSkipped(t *testing.T) {
	evraklar := []models.Evrak{
		{ID: 1, LokasyonID: 1, ToplamSefer: 5},
		{ID: 2, LokasyonID: 99, ToplamSefer: 4},
	}
	got := AggregateByLokasyon(evraklar, map[uint]string{1: "İstanbul"})
	want := []KeyTotal{{Key: "İstanbul", Toplam: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AggregateByLokasyon() = %v, want %v", got, want)
	}
}

func TestAggregateByProje(t *testing.T) {
	evraklar := []models.Evrak{
		{
			ID: 1,
			Projeler: []models.EvrakProje{
				{ProjeID: 10, SeferSayisi: 2},
				{ProjeID: 11, SeferSayisi: 6},
			},
		},
		{
			ID: 2,
			Projeler: []models.EvrakProje{
				{ProjeID: 10, SeferSayisi: 3},
				{ProjeID: 99, SeferSayisi: 4}, // silinmiş proje, atlanır
			},
		},
	}
	adlar := map[uint]string{10: "Proje A", 11: "Proje B"}

	got := AggregateByProje(evraklar, adlar)
	want := []KeyTotal{
		{Key: "Proje B", Toplam: 6},
		{Key: "Proje A", Toplam: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AggregateByProje() = %v, want %v", got, want)
	}
}

func TestAggregateByAciklama(t *testing.T) {
	evraklar := []models.Evrak{
		{
			ID:          1,
			ToplamSefer: 50, // sayım sefer satırı başına 1'dir, sefer sayısı ağırlıklı değil
			Seferler: []models.EvrakSefer{
				{Aciklama: "Orijinali Alındı"},
				{Aciklama: "orijinali   alındı"}, // yazım varyantı aynı kovada birikir
				{Aciklama: "Eksik Evrak"},
			},
		},
		{
			ID:       2,
			Seferler: []models.EvrakSefer{{Aciklama: "Eksik Evrak"}},
		},
	}

	got := AggregateByAciklama(evraklar)
	want := []KeyTotal{
		{Key: "Orijinali Alındı", Toplam: 2},
		{Key: "Eksik Evrak", Toplam: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AggregateByAciklama() = %v, want %v", got, want)
	}
}

// Eşit toplamlar ilk görülme sırasını korumalı (stabil azalan sıralama).
func TestAggregateTieBreakEncounterOrder(t *testing.T) {
	evraklar := []models.Evrak{
		{ID: 1, LokasyonID: 1, ToplamSefer: 4},
		{ID: 2, LokasyonID: 2, ToplamSefer: 4},
		{ID: 3, LokasyonID: 3, ToplamSefer: 9},
	}
	adlar := map[uint]string{1: "Ankara", 2: "Bursa", 3: "Adana"}

	got := AggregateByLokasyon(evraklar, adlar)
	want := []KeyTotal{
		{Key: "Adana", Toplam: 9},
		{Key: "Ankara", Toplam: 4},
		{Key: "Bursa", Toplam: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tie-break bozuldu: %v, want %v", got, want)
	}
}
