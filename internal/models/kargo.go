package models

import "time"

// KargoKayit: Gelen kargo koli kaydı. EvrakSayisi türetilmiş alandır:
// irsaliye ve focal evrak numarası alanlarındaki tire ile ayrılmış
// parça sayısı + elle girilen ek evrak sayısı. Her yazmada sunucu
// tarafında yeniden hesaplanır.
type KargoKayit struct {
	ID               uint      `gorm:"primaryKey"`
	Tarih            time.Time `gorm:"index;not null"`
	TasiyiciFirma    string    `gorm:"size:150"`
	TakipNo          string    `gorm:"size:100"`
	GondericiFirma   string    `gorm:"size:150"`
	IrsaliyeAdi      string    `gorm:"size:150"`
	IrsaliyeNolari   string    `gorm:"size:500"` // tire ile ayrılmış liste
	FocalEvrakNolari string    `gorm:"size:500"` // tire ile ayrılmış liste
	EkEvrakSayisi    int       `gorm:"not null;default:0"`
	EvrakSayisi      int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
