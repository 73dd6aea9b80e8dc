package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDatasetURL points at Our World in Data's COVID-19 dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/owid/covid-19-data/master/public/data/owid-covid-data.csv"

// Config holds all application configuration loaded from environment variables.
// Every knob has a default, so the binary runs with no arguments at all.
type Config struct {
	DatasetURL   string
	OutputDir    string
	FetchTimeout time.Duration

	ExportCleanCSV bool
	CleanCSVPath   string

	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DatasetURL:   getEnv("DATASET_URL", DefaultDatasetURL),
		OutputDir:    getEnv("OUTPUT_DIR", "./covid_visualizations"),
		FetchTimeout: time.Duration(getEnvInt("FETCH_TIMEOUT_S", 30)) * time.Second,

		ExportCleanCSV: getEnvBool("EXPORT_CLEAN_CSV", false),
		CleanCSVPath:   getEnv("CLEAN_CSV_PATH", "./covid_visualizations/clean_records.csv"),

		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "covid"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "covid123"),
		PostgresDB:       getEnv("POSTGRES_DB", "covid_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
