package models

import "time"

// HedefKargo: Hedef kargo takip kaydı, bağımsız düz tablo.
type HedefKargo struct {
	ID           uint      `gorm:"primaryKey"`
	Tarih        time.Time `gorm:"index;not null"`
	Gonderen     string    `gorm:"size:150"`
	Tedarikci    string    `gorm:"size:150"`
	TeslimAlan   string    `gorm:"size:150"`
	TeslimTarihi time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
