package prefs

import (
	"errors"

	"evraktakip-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store: Kullanıcı başına anahtar-değer tercih deposu. Değerler
// istemcinin yorumladığı serbest JSON string'leridir (favori listesi,
// son kullanılanlar, tema vb.); sunucu içeriğe karışmaz.
type Store interface {
	Get(userID uint, key string) (string, bool, error)
	GetAll(userID uint) (map[string]string, error)
	Set(userID uint, key, value string) error
	Delete(userID uint, key string) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(userID uint, key string) (string, bool, error) {
	var pref models.UserPreference
	err := s.db.Where("user_id = ? AND key = ?", userID, key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

func (s *gormStore) GetAll(userID uint) (map[string]string, error) {
	var prefs []models.UserPreference
	if err := s.db.Where("user_id = ?", userID).Find(&prefs).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(prefs))
	for _, p := range prefs {
		out[p.Key] = p.Value
	}
	return out, nil
}

func (s *gormStore) Set(userID uint, key, value string) error {
	pref := models.UserPreference{UserID: userID, Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}

func (s *gormStore) Delete(userID uint, key string) error {
	return s.db.Where("user_id = ? AND key = ?", userID, key).
		Delete(&models.UserPreference{}).Error
}
