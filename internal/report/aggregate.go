package report

import (
	"sort"

	"evraktakip-backend/internal/models"
)

// KeyTotal: Bir boyutun görünen adı ile toplanan değer.
type KeyTotal struct {
	Key    string  `json:"key"`
	Toplam float64 `json:"toplam"`
}

// toplayici: Anahtarların ilk görülme sırasını koruyan biriktirici.
// Azalan sıralamada eşitlik bozma ilk görülme sırasına göredir.
type toplayici struct {
	index map[string]int
	rows  []KeyTotal
}

func yeniToplayici() *toplayici {
	return &toplayici{index: make(map[string]int)}
}

// ekle: key altına değer ekler; display sadece anahtar ilk kez
// görüldüğünde kaydedilir (normalize edilmiş anahtar ekrana çıkmaz).
func (t *toplayici) ekle(key, display string, deger float64) {
	i, ok := t.index[key]
	if !ok {
		i = len(t.rows)
		t.index[key] = i
		t.rows = append(t.rows, KeyTotal{Key: display})
	}
	t.rows[i].Toplam += deger
}

// sonuc: Satırları toplam değere göre azalan, eşitlikte ilk görülme
// sırasını koruyarak döndürür.
func (t *toplayici) sonuc() []KeyTotal {
	rows := t.rows
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Toplam > rows[j].Toplam
	})
	if rows == nil {
		rows = []KeyTotal{}
	}
	return rows
}

// AggregateByProje: Her evrakın her proje dağılımındaki sefer sayısını
// o projenin görünen adı altında toplar. Silinmiş/tanınmayan proje
// id'lerine işaret eden dağılımlar hata üretmez, atlanır.
func AggregateByProje(evraklar []models.Evrak, projeAdlari map[uint]string) []KeyTotal {
	t := yeniToplayici()
	for _, e := range evraklar {
		for _, p := range e.Projeler {
			ad, ok := projeAdlari[p.ProjeID]
			if !ok {
				continue
			}
			t.ekle(ad, ad, float64(p.SeferSayisi))
		}
	}
	return t.sonuc()
}

// AggregateByLokasyon: Her evrakın kayıtlı ToplamSefer değerini (yeniden
// türetmeden) lokasyonunun görünen adı altında toplar. Tanınmayan
// lokasyon id'leri proje tarafıyla tutarlı biçimde atlanır.
func AggregateByLokasyon(evraklar []models.Evrak, lokasyonAdlari map[uint]string) []KeyTotal {
	t := yeniToplayici()
	for _, e := range evraklar {
		ad, ok := lokasyonAdlari[e.LokasyonID]
		if !ok {
			continue
		}
		t.ekle(ad, ad, float64(e.ToplamSefer))
	}
	return t.sonuc()
}

// AggregateByAciklama: Sefer açıklaması başına sefer adedi sayar
// (sefer sayısı ağırlıklı değil, satır başına 1). Açıklamalar yazım
// varyasyonlarını birleştirmek için normalize edilmiş anahtarla
// gruplanır, görünen değer ilk karşılaşılan ham metindir.
func AggregateByAciklama(evraklar []models.Evrak) []KeyTotal {
	t := yeniToplayici()
	for _, e := range evraklar {
		for _, s := range e.Seferler {
			t.ekle(Normalize(s.Aciklama), s.Aciklama, 1)
		}
	}
	return t.sonuc()
}
