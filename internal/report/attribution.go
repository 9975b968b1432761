package report

import (
	"math"

	"evraktakip-backend/internal/models"
)

// AciklamaPayi: Bir açıklama kategorisine düşen (gerekirse kesirli)
// sefer karşılığı ve seçili boyut toplamı içindeki yüzdesi.
type AciklamaPayi struct {
	Aciklama string  `json:"aciklama"`
	Adet     float64 `json:"adet"`
	Yuzde    float64 `json:"yuzde"`
}

// ProjeDagilimi: Seçili projeye atfedilen toplam sefer sayısı ile
// açıklama bazında kesirli dağılım.
type ProjeDagilimi struct {
	ToplamSefer int            `json:"toplam_sefer"`
	Satirlar    []AciklamaPayi `json:"satirlar"`
}

// LokasyonDagilimi: Seçili lokasyonun evraklarındaki açıklama sayımları.
type LokasyonDagilimi struct {
	ToplamSefer int            `json:"toplam_sefer"`
	Satirlar    []AciklamaPayi `json:"satirlar"`
}

// AttributeToProje: Seferler evrak düzeyinde tutulduğu için, seferleri
// birden çok projeye bölünmüş bir evrakın açıklama sayımları seçili
// projeye o projenin evrakın toplam sefer dağılımındaki payı oranında
// kesirli olarak atfedilir. 3 seferli, %40/%60 iki projeli bir evrak
// iki projenin açıklama kovalarına sırasıyla 1.2 ve 1.8 "sefer
// karşılığı" yazar, tam sayı değil.
//
// ToplamSefer paydası her zaman 1. adımda bağımsız hesaplanan değerdir;
// açıklama toplamından yeniden türetilmez (sefer listesi ile proje
// dağılımı bağımsız düzenlendiğinde ikisi ayrışabilir, bu kabul edilir).
func AttributeToProje(evraklar []models.Evrak, projeID uint) ProjeDagilimi {
	toplam := 0
	for _, e := range evraklar {
		toplam += projePayi(e, projeID)
	}

	ham := apportionAciklama(evraklar, func(e models.Evrak) float64 {
		// Bölme öncesi sıfır kontrolü: dağılımı olmayan ya da toplamı
		// pozitif olmayan evrak ağırlıklı toplama hiç girmez.
		evrakToplami := 0
		for _, p := range e.Projeler {
			if p.SeferSayisi > 0 {
				evrakToplami += p.SeferSayisi
			}
		}
		if evrakToplami <= 0 {
			return 0
		}
		return float64(projePayi(e, projeID)) / float64(evrakToplami)
	})

	satirlar := make([]AciklamaPayi, 0, len(ham))
	for _, r := range ham {
		adet := round1(r.Toplam)
		yuzde := 0.0
		if toplam > 0 {
			yuzde = round1(adet / float64(toplam) * 100)
		}
		satirlar = append(satirlar, AciklamaPayi{Aciklama: r.Key, Adet: adet, Yuzde: yuzde})
	}

	return ProjeDagilimi{ToplamSefer: toplam, Satirlar: satirlar}
}

// LokasyonAciklamaDagilimi: Lokasyon varyantı kesirli paylaştırma
// YAPMAZ: bir evrak tam olarak bir lokasyona ait olduğundan seçili
// lokasyonun evraklarının açıklama sayımları düz toplanır (ağırlık
// daima 1). Proje varyantının kesirli mantığı buraya genellenmez.
func LokasyonAciklamaDagilimi(evraklar []models.Evrak, lokasyonID uint) LokasyonDagilimi {
	toplam := 0
	for _, e := range evraklar {
		if e.LokasyonID == lokasyonID {
			toplam += e.ToplamSefer
		}
	}

	ham := apportionAciklama(evraklar, func(e models.Evrak) float64 {
		if e.LokasyonID == lokasyonID {
			return 1
		}
		return 0
	})

	satirlar := make([]AciklamaPayi, 0, len(ham))
	for _, r := range ham {
		yuzde := 0.0
		if toplam > 0 {
			yuzde = round1(r.Toplam / float64(toplam) * 100)
		}
		satirlar = append(satirlar, AciklamaPayi{Aciklama: r.Key, Adet: r.Toplam, Yuzde: yuzde})
	}

	return LokasyonDagilimi{ToplamSefer: toplam, Satirlar: satirlar}
}

// apportionAciklama: Ortak ağırlıklı biriktirme. Her evrak için bir
// ağırlık hesaplanır; sıfır ağırlıklı evrak tamamen atlanır, pozitif
// ağırlık evrakın her seferinin açıklama kovasına eklenir. Kovalar
// normalize edilmiş açıklamayla anahtarlanır, görünen değer ilk
// karşılaşılan ham metindir; satırlar toplam değere göre azalan,
// eşitlikte ilk görülme sırası korunarak döner.
func apportionAciklama(evraklar []models.Evrak, agirlik func(models.Evrak) float64) []KeyTotal {
	t := yeniToplayici()
	for _, e := range evraklar {
		w := agirlik(e)
		if w == 0 {
			continue
		}
		for _, s := range e.Seferler {
			t.ekle(Normalize(s.Aciklama), s.Aciklama, w)
		}
	}
	return t.sonuc()
}

func projePayi(e models.Evrak, projeID uint) int {
	pay := 0
	for _, p := range e.Projeler {
		if p.ProjeID == projeID {
			pay += p.SeferSayisi
		}
	}
	return pay
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
