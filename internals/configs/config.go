package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var AppEnv string

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	AppEnv = GetEnv("APP_ENV", "development")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsProduction: stack trace hanya ikut di response saat non-production.
func IsProduction() bool { return AppEnv == "production" }
