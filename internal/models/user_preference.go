package models

import "time"

// UserPreference: Kullanıcıya bağlı kalıcı görünüm tercihi
// (favoriler, son kullanılanlar, tema). Anahtar-değer olarak tutulur,
// değer serbest JSON string'idir.
type UserPreference struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index:idx_user_pref,unique;not null"`
	Key       string `gorm:"size:100;index:idx_user_pref,unique;not null"`
	Value     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
