package tms

import "strconv"

// durumEtiketleri: TMS'in sayısal sipariş durumu kodlarının sabit
// Türkçe karşılıkları. Sözlük TMS tarafında tanımlıdır ve birebir
// korunmalıdır.
var durumEtiketleri = map[int]string{
	1:   "Beklemede",
	2:   "Onaylandı",
	3:   "Spot Araç Planlama",
	4:   "Araç Atandı",
	5:   "Araç Yüklendi",
	6:   "Araç Yolda",
	7:   "Teslim Edildi",
	8:   "Tamamlandı",
	10:  "Eksik Evrak",
	20:  "Hasarsız Görüntü",
	30:  "Hasarlı Görüntü İşlendi",
	31:  "Hasarlı Orijinal Evrak",
	40:  "Orijinal Evrak Geldi",
	50:  "Evrak Arşivlendi",
	80:  "Araç Boşaltılıyor",
	90:  "Filo Araç Planlama",
	200: "İptal Edildi",
}

// DurumEtiketi: Kodu Türkçe etikete çevirir; sözlükte olmayan kodlar
// ham sayı olarak gösterilir.
func DurumEtiketi(kod int) string {
	if etiket, ok := durumEtiketleri[kod]; ok {
		return etiket
	}
	return strconv.Itoa(kod)
}
