package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	InputPath    string
	EnrichedPath string
	ReportPath   string
	LogPath      string
	DBPath       string

	CatalogBaseURL   string
	CatalogLimit     int
	CatalogTimeoutMs int

	TopN            int
	LowQtyThreshold int
	CurrencySymbol  string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		InputPath:    getEnv("SALES_INPUT_PATH", filepath.Join(cwd, "data", "sales_data.txt")),
		EnrichedPath: getEnv("SALES_ENRICHED_PATH", filepath.Join(cwd, "data", "enriched_sales_data.txt")),
		ReportPath:   getEnv("SALES_REPORT_PATH", filepath.Join(cwd, "output", "sales_report.txt")),
		LogPath:      getEnv("SALES_LOG_PATH", filepath.Join(cwd, "output", "application.log")),
		DBPath:       getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),

		CatalogBaseURL:   getEnv("CATALOG_BASE_URL", "https://dummyjson.com"),
		CatalogLimit:     getEnvInt("CATALOG_LIMIT", 100),
		CatalogTimeoutMs: getEnvInt("CATALOG_TIMEOUT_MS", 10000),

		TopN:            getEnvInt("REPORT_TOP_N", 5),
		LowQtyThreshold: getEnvInt("REPORT_LOW_QTY_THRESHOLD", 10),
		CurrencySymbol:  getEnv("REPORT_CURRENCY_SYMBOL", "₹"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
