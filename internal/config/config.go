package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Data  DataConfig
	Order OrderConfig
	Otel  OtelConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

// DataConfig locates the JSON flat files the store runs on.
type DataConfig struct {
	Dir            string
	CatalogFile    string
	OrderFile      string
	FraudCasesFile string
}

type OrderConfig struct {
	// How long a placed order spends in each fulfillment stage.
	StageDuration time.Duration
}

// OtelConfig controls trace export. Disabled by default; the endpoint speaks
// OTLP over HTTP (Jaeger listens on 4318).
type OtelConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	dataDir := getEnv("DATA_DIR", "data")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Data: DataConfig{
			Dir:            dataDir,
			CatalogFile:    getEnv("CATALOG_FILE", filepath.Join(dataDir, "catalog.json")),
			OrderFile:      getEnv("ORDER_HISTORY_FILE", filepath.Join(dataDir, "order_history.json")),
			FraudCasesFile: getEnv("FRAUD_CASES_FILE", filepath.Join(dataDir, "fraud_cases.json")),
		},
		Order: OrderConfig{
			StageDuration: time.Duration(getEnvAsInt("ORDER_STAGE_DURATION_SECONDS", 120)) * time.Second,
		},
		Otel: OtelConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
