package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	DBPath          string
	StaticDir       string
	TemplateDir     string
	LogDir          string
	SessionSecret   string
	SessionTTLHours int
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		// Only log when not in test mode
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using default values")
		}
	}

	ttl, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || ttl <= 0 {
		ttl = 24
	}

	return Config{
		ServerPort:      getEnv("SERVER_PORT", "3004"),
		DBPath:          getEnv("DB_PATH", "tasks.db"),
		StaticDir:       getEnv("STATIC_DIR", "static"),
		TemplateDir:     getEnv("TEMPLATE_DIR", "templates"),
		LogDir:          getEnv("LOG_DIR", "logs"),
		SessionSecret:   getEnv("SESSION_SECRET", "change_this_to_secure_random_value"),
		SessionTTLHours: ttl,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
