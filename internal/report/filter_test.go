package report

import (
	"reflect"
	"testing"
	"time"

	"evraktakip-backend/internal/models"
)

func gun(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testEvraklar() []models.Evrak {
	return []models.Evrak{
		{
			ID: 1, Tarih: gun(2024, 3, 1), LokasyonID: 1, ToplamSefer: 5,
			Seferler: []models.EvrakSefer{{SeferNo: "S-1", Aciklama: "Tarafımızca Düzeltilmiştir"}},
			Projeler: []models.EvrakProje{{ProjeID: 10, SeferSayisi: 5}},
		},
		{
			ID: 2, Tarih: gun(2024, 3, 5), LokasyonID: 2, ToplamSefer: 3,
			Seferler: []models.EvrakSefer{{SeferNo: "S-2", Aciklama: "Orijinali Alındı"}},
			Projeler: []models.EvrakProje{{ProjeID: 11, SeferSayisi: 3}},
		},
		{
			ID: 3, Tarih: gun(2024, 3, 10), LokasyonID: 1, ToplamSefer: 7,
			Seferler: []models.EvrakSefer{
				{SeferNo: "S-3", Aciklama: "Orijinali Alındı"},
				{SeferNo: "S-4", Aciklama: "Eksik Evrak"},
			},
			Projeler: []models.EvrakProje{{ProjeID: 10, SeferSayisi: 4}, {ProjeID: 11, SeferSayisi: 3}},
		},
	}
}

func evrakIDs(evraklar []models.Evrak) []uint {
	ids := make([]uint, 0, len(evraklar))
	for _, e := range evraklar {
		ids = append(ids, e.ID)
	}
	return ids
}

// Aktif ölçüt yokken girdi aynen ve aynı sırada dönmeli.
func TestFilterEvraklarIdentity(t *testing.T) {
	evraklar := testEvraklar()
	got := FilterEvraklar(evraklar, Criteria{})
	if !reflect.DeepEqual(evrakIDs(got), []uint{1, 2, 3}) {
		t.Errorf("boş ölçüt girdi sırasını korumadı: %v", evrakIDs(got))
	}

	var bos []models.Evrak
	if out := FilterEvraklar(bos, Criteria{}); len(out) != 0 {
		t.Errorf("sıfır kayıt için %d kayıt döndü", len(out))
	}
}

func TestFilterEvraklar(t *testing.T) {
	from := gun(2024, 3, 2)
	to := gun(2024, 3, 6)

	tests := []struct {
		name string
		crit Criteria
		want []uint
	}{
		{
			name: "date from",
			crit: Criteria{Baslangic: &from},
			want: []uint{2, 3},
		},
		{
			name: "date to",
			crit: Criteria{Bitis: &to},
			want: []uint{1, 2},
		},
		{
			name: "date range inclusive bounds",
			crit: Criteria{Baslangic: &from, Bitis: &to},
			want: []uint{2},
		},
		{
			name: "single lokasyon",
			crit: Criteria{LokasyonIDs: []uint{1}},
			want: []uint{1, 3},
		},
		{
			name: "multiple lokasyon union",
			crit: Criteria{LokasyonIDs: []uint{1, 2}},
			want: []uint{1, 2, 3},
		},
		{
			name: "proje matches any allocation",
			crit: Criteria{ProjeIDs: []uint{11}},
			want: []uint{2, 3},
		},
		{
			name: "free text turkish case-insensitive",
			crit: Criteria{AciklamaIcerik: "orijinali"},
			want: []uint{2, 3},
		},
		{
			name: "free text no match",
			crit: Criteria{AciklamaIcerik: "hasarlı"},
			want: []uint{},
		},
		{
			name: "criteria AND-compose",
			crit: Criteria{LokasyonIDs: []uint{1}, ProjeIDs: []uint{11}},
			want: []uint{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evrakIDs(FilterEvraklar(testEvraklar(), tt.crit))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterEvraklar() ids = %v, want %v", got, tt.want)
			}
		})
	}
}

// Ardışık iki süzme, ölçütlerin birleşimiyle tek süzmeye denk olmalı.
func TestFilterEvraklarComposition(t *testing.T) {
	evraklar := testEvraklar()
	from := gun(2024, 3, 2)

	c1 := Criteria{Baslangic: &from}
	c2 := Criteria{LokasyonIDs: []uint{1}}
	merged := Criteria{Baslangic: &from, LokasyonIDs: []uint{1}}

	ardisik := FilterEvraklar(FilterEvraklar(evraklar, c1), c2)
	tekSeferde := FilterEvraklar(evraklar, merged)

	if !reflect.DeepEqual(evrakIDs(ardisik), evrakIDs(tekSeferde)) {
		t.Errorf("kompozisyon bozuldu: %v != %v", evrakIDs(ardisik), evrakIDs(tekSeferde))
	}
}
