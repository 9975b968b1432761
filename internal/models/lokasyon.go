package models

import "time"

type Lokasyon struct {
	ID        uint   `gorm:"primaryKey"`
	Ad        string `gorm:"size:150;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
