package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DatasetURL != DefaultDatasetURL {
		t.Errorf("DatasetURL: got %s", cfg.DatasetURL)
	}
	if cfg.OutputDir != "./covid_visualizations" {
		t.Errorf("OutputDir: got %s", cfg.OutputDir)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout: got %s, want 30s", cfg.FetchTimeout)
	}
	if cfg.ExportCleanCSV || cfg.PostgresEnabled {
		t.Error("optional sinks must be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATASET_URL", "http://example.com/data.csv")
	t.Setenv("FETCH_TIMEOUT_S", "5")
	t.Setenv("POSTGRES_ENABLED", "true")

	cfg := Load()

	if cfg.DatasetURL != "http://example.com/data.csv" {
		t.Errorf("DatasetURL override ignored: %s", cfg.DatasetURL)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout: got %s, want 5s", cfg.FetchTimeout)
	}
	if !cfg.PostgresEnabled {
		t.Error("POSTGRES_ENABLED override ignored")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost:     "db",
		PostgresPort:     "5433",
		PostgresUser:     "u",
		PostgresPassword: "p",
		PostgresDB:       "covid",
		PostgresSSLMode:  "disable",
	}

	want := "host=db port=5433 user=u password=p dbname=covid sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}
