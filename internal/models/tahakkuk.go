package models

import "time"

type TahakkukDurum string

const (
	TahakkukBeklemede  TahakkukDurum = "beklemede"
	TahakkukOdendi     TahakkukDurum = "odendi"
	TahakkukBulunamadi TahakkukDurum = "bulunamadi"
)

// Tahakkuk: Tedarikçi ödeme takip kaydı. Durum geçişleri serbesttir
// (her durumdan her duruma geçilebilir); her mutasyon güncelleyen
// kullanıcıyı, zamanı ve serbest metin SonIslem etiketini damgalar.
type Tahakkuk struct {
	ID             uint          `gorm:"primaryKey"`
	TedarikciFirma string        `gorm:"size:150;not null"`
	Aciklama       string        `gorm:"size:500"`
	OdemeTarihi    time.Time     `gorm:"index"`
	GirisTarihi    time.Time     `gorm:"index;not null"`
	Durum          TahakkukDurum `gorm:"size:20;not null;default:beklemede"`
	OlusturanAd    string        `gorm:"size:100"`
	GuncelleyenAd  string        `gorm:"size:100"`
	SonIslem       string        `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
