package database

import (
	"log"

	"evraktakip-backend/internal/config"
	"evraktakip-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	// Tahakkuk durum migration'ı: eski serbest metin durumlar sabit
	// sözlüğe çekiliyor (AutoMigrate'ten ÖNCE, mevcut kayıtları korumak için)
	if DB.Migrator().HasTable(&models.Tahakkuk{}) {
		var bozukCount int64
		DB.Raw("SELECT COUNT(*) FROM tahakkuks WHERE durum NOT IN ('beklemede','odendi','bulunamadi')").Scan(&bozukCount)
		if bozukCount > 0 {
			log.Printf("Tahakkuk tablosunda %d adet tanınmayan durum bulundu, 'beklemede' yapılıyor...", bozukCount)
			DB.Exec("UPDATE tahakkuks SET durum = 'beklemede' WHERE durum NOT IN ('beklemede','odendi','bulunamadi')")
		}
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Lokasyon{},
		&models.Proje{},
		&models.Evrak{},
		&models.EvrakSefer{},
		&models.EvrakProje{},
		&models.KargoKayit{},
		&models.Tahakkuk{},
		&models.HedefKargo{},
		&models.AuditLog{},
		&models.UserPreference{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
