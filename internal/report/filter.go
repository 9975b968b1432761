package report

import (
	"strings"
	"time"
	"unicode"

	"evraktakip-backend/internal/models"
)

// Criteria: Evrak listesi üzerinde bağımsız eksenlerde süzme ölçütleri.
// Boş bırakılan her eksen no-op'tur (hiçbir kaydı elemez); dolu eksenler
// mantıksal AND ile birleşir.
type Criteria struct {
	Baslangic      *time.Time // tarih >= Baslangic
	Bitis          *time.Time // tarih <= Bitis
	LokasyonIDs    []uint     // boş = filtre yok
	ProjeIDs       []uint     // evrakın HERHANGİ bir proje dağılımı eşleşirse geçer
	AciklamaIcerik string     // sefer açıklamalarının birleşiminde TR harf duyarsız arama
}

// FilterEvraklar: Kayıtları ölçütlere göre süzer. Girdi sırası korunur,
// yeniden sıralama yapılmaz. Sıfır kayıt ve sıfır aktif ölçüt özel
// durum gerektirmez (girdi aynen döner).
func FilterEvraklar(evraklar []models.Evrak, crit Criteria) []models.Evrak {
	lokasyonSet := toIDSet(crit.LokasyonIDs)
	projeSet := toIDSet(crit.ProjeIDs)

	aranan := ""
	if crit.AciklamaIcerik != "" {
		aranan = strings.ToUpperSpecial(unicode.TurkishCase, crit.AciklamaIcerik)
	}

	sonuc := make([]models.Evrak, 0, len(evraklar))
	for _, e := range evraklar {
		if crit.Baslangic != nil && e.Tarih.Before(*crit.Baslangic) {
			continue
		}
		if crit.Bitis != nil && e.Tarih.After(*crit.Bitis) {
			continue
		}
		if len(lokasyonSet) > 0 {
			if _, ok := lokasyonSet[e.LokasyonID]; !ok {
				continue
			}
		}
		if len(projeSet) > 0 && !herhangiProjeEslesir(e, projeSet) {
			continue
		}
		if aranan != "" && !aciklamaIcerir(e, aranan) {
			continue
		}
		sonuc = append(sonuc, e)
	}
	return sonuc
}

func toIDSet(ids []uint) map[uint]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func herhangiProjeEslesir(e models.Evrak, projeSet map[uint]struct{}) bool {
	for _, p := range e.Projeler {
		if _, ok := projeSet[p.ProjeID]; ok {
			return true
		}
	}
	return false
}

func aciklamaIcerir(e models.Evrak, arananUpper string) bool {
	parcalar := make([]string, 0, len(e.Seferler))
	for _, s := range e.Seferler {
		parcalar = append(parcalar, s.Aciklama)
	}
	birlesik := strings.ToUpperSpecial(unicode.TurkishCase, strings.Join(parcalar, " "))
	return strings.Contains(birlesik, arananUpper)
}
