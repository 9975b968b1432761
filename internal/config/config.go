package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// TMS entegrasyonu (harici lojistik API'si)
	TMSAPIURL    string // sipariş/sefer durumu endpoint'i
	TMSAPIToken  string // sunucu tarafında eklenen statik bearer token
	TMSUserID    int    // API'nin istek gövdesinde beklediği kullanıcı id'si
	TMSChunkDays int    // geniş tarih aralıklarının bölüneceği parça boyu (gün)
}

func Load() *Config {
	// .env varsa yükle; yoksa sessizce ortam değişkenleriyle devam et
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=evraktakip port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		TMSAPIURL:    getEnv("TMS_API_URL", ""),
		TMSAPIToken:  getEnv("TMS_API_TOKEN", ""),
		TMSUserID:    getEnvInt("TMS_USER_ID", 0),
		TMSChunkDays: getEnvInt("TMS_CHUNK_DAYS", 7),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=evraktakip port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}
	if cfg.TMSAPIToken == "" {
		log.Println("[WARN] TMS_API_TOKEN tanımlanmamış, TMS raporları ve proxy çalışmayacak.")
	}
	if cfg.TMSChunkDays < 1 {
		log.Println("[WARN] TMS_CHUNK_DAYS geçersiz, 7 gün kullanılacak.")
		cfg.TMSChunkDays = 7
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[WARN] %s sayı değil, varsayılan değer (%d) kullanılıyor", key, def)
	}
	return def
}
