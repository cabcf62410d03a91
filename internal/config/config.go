package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит все настройки приложения
type Config struct {
	// Remote API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Local Storage
	CredentialsDBPath string
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если он существует
	_ = godotenv.Load()

	config := &Config{
		APIBaseURL:        getEnv("API_BASE_URL", "https://mathmentor-qnyk.onrender.com"),
		CredentialsDBPath: getEnv("CREDENTIALS_DB_PATH", defaultCredentialsPath()),
	}

	// Парсим таймаут HTTP-запросов
	if seconds, err := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "15")); err == nil && seconds > 0 {
		config.HTTPTimeout = time.Duration(seconds) * time.Second
	} else {
		config.HTTPTimeout = 15 * time.Second
	}

	return config, nil
}

// defaultCredentialsPath возвращает путь к локальному хранилищу учетных данных
func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "mathmentor", "credentials.db")
	}
	return filepath.Join(dir, "mathmentor", "credentials.db")
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
