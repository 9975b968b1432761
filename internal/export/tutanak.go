package export

import (
	"fmt"
	"strings"
	"time"
)

// TutanakRow: Tutanağa girecek alanlar. TMS sefer durumu satırları
// kalıcı tutulmadığı için kaynak satır çağıran tarafından gönderilir.
type TutanakRow struct {
	TedarikciAdi string `json:"tedarikci_adi"`
	MusteriAdi   string `json:"musteri_adi"`
	SevkTarihi   string `json:"sevk_tarihi"` // "2006-01-02" veya serbest metin
	EvrakNo      string `json:"evrak_no"`
	YuklemeYeri  string `json:"yukleme_yeri"`
	TeslimYeri   string `json:"teslim_yeri"`
	PlakaNo      string `json:"plaka_no"`
	SurucuAdi    string `json:"surucu_adi"`
	SurucuTC     string `json:"surucu_tc"`
	IrsaliyeNo   string `json:"irsaliye_no"`
}

// Boş alanların yerine basılan işaret. Asla "null"/"undefined" benzeri
// bir değer ekrana çıkmaz.
const bosAlanIsareti = "---"

const tespitParagrafi = "İşbu tutanak, %s tarihinde %s tarafından %s adına gerçekleştirilen " +
	"%s numaralı evraka konu taşıma işlemine ilişkin olarak düzenlenmiştir. Söz konusu taşıma, " +
	"%s plakalı araç ile %s T.C. kimlik numaralı sürücü %s tarafından %s yükleme noktasından " +
	"%s teslim noktasına yapılmış olup taşımaya ait sevk irsaliyesi numarası %s olarak kayıtlıdır."

const sorumlulukParagrafi = "Yukarıda bilgileri yer alan taşımaya ait sevk evrakının aslının " +
	"tarafımıza ulaşmadığı / eksik ulaştığı tespit edilmiştir. İlgili evrak aslının en geç yedi (7) " +
	"iş günü içinde tarafımıza teslim edilmesini; aksi halde evrakın kaybından doğacak her türlü " +
	"hukuki, mali ve idari sorumluluğun %s tarafına ait olacağını, işbu tutanağın bu hususun " +
	"tespiti ve tebliği amacıyla düzenlendiğini beyan ve ihtar ederiz."

// RenderTutanakText: Tutanağın iki sabit paragrafını kaynak satırın
// alanlarını yerine koyarak üretir. Aynı girdi için bayt bayt aynı
// çıktıyı verir; tutanak metni sözleşmesel olarak sabittir, koşullu
// mantık yalnızca boş alan yerine işaret basmaktan ibarettir.
func RenderTutanakText(row TutanakRow) string {
	p1 := fmt.Sprintf(tespitParagrafi,
		alan(formatTarih(row.SevkTarihi)),
		alan(row.TedarikciAdi),
		alan(row.MusteriAdi),
		alan(row.EvrakNo),
		alan(row.PlakaNo),
		alan(row.SurucuTC),
		alan(row.SurucuAdi),
		alan(row.YuklemeYeri),
		alan(row.TeslimYeri),
		alan(row.IrsaliyeNo),
	)
	p2 := fmt.Sprintf(sorumlulukParagrafi, alan(row.TedarikciAdi))
	return p1 + "\n\n" + p2
}

func alan(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return bosAlanIsareti
	}
	return s
}

// formatTarih: ISO tarih gelirse Türk gösterimine çevirir, çevrilemeyen
// değerler olduğu gibi basılır.
func formatTarih(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("02.01.2006")
	}
	return s
}
