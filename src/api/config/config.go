package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDriver string // mysql | sqlite
	DBDSN    string
	RedisURL string // empty disables execution event publishing
	APIKeys  string // key:tenant pairs, comma separated
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:     getenv("PORT", "8080"),
		DBDriver: getenv("DB_DRIVER", "sqlite"),
		DBDSN:    getenv("DB_DSN", "agents.db"),
		RedisURL: os.Getenv("REDIS_URL"),
		APIKeys:  getenv("API_KEYS", "sk-key-123:tenant-1,sk-key-456:tenant-2,sk-key-admin:admin-tenant"),
	}
}
