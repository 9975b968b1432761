package models

import "time"

// Evrak: Bir lokasyondaki bir günlük sefer paketini temsil eden evrak kaydı.
// ToplamSefer türetilmiş bir alandır: her create/update'te proje
// dağılımlarının (EvrakProje) toplamı olarak sunucu tarafında yeniden
// hesaplanır. Seferler ve dağılımlar bağımsız düzenlenebildiği için bu
// sayı sefer listesinin uzunluğundan sapabilir; bu sapma bilinçli olarak
// korunur, mutabakat yapılmaz.
type Evrak struct {
	ID          uint      `gorm:"primaryKey"`
	Tarih       time.Time `gorm:"index;not null"`
	LokasyonID  uint      `gorm:"index;not null"`
	Lokasyon    Lokasyon
	ToplamSefer int `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Seferler []EvrakSefer `gorm:"foreignKey:EvrakID;constraint:OnDelete:CASCADE"`
	Projeler []EvrakProje `gorm:"foreignKey:EvrakID;constraint:OnDelete:CASCADE"`
}

// EvrakSefer: Evraka bağlı tek bir sefer satırı (sefer no + açıklama).
// SeferNo üzerinde tekillik kısıtı yoktur.
type EvrakSefer struct {
	ID       uint   `gorm:"primaryKey"`
	EvrakID  uint   `gorm:"index;not null"`
	SeferNo  string `gorm:"size:50"`
	Aciklama string `gorm:"size:255"`
}

// EvrakProje: Evrakın sefer sayısını projelere paylaştıran dağılım satırı.
// Aynı proje birden fazla evrakta görünebilir.
type EvrakProje struct {
	ID          uint `gorm:"primaryKey"`
	EvrakID     uint `gorm:"index;not null"`
	ProjeID     uint `gorm:"index;not null"`
	SeferSayisi int  `gorm:"not null;default:0"`
}
