// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Storage       StorageConfig
	Remote        RemoteConfig
	Cache         CacheConfig
	Catalog       CatalogConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	MaxUploadBytes  int64
	ProcessTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type StorageConfig struct {
	Type       string
	LocalPath  string
	S3Bucket   string
	S3Region   string
	S3Endpoint string
}

type RemoteConfig struct {
	Enabled     bool
	BaseURL     string
	RequestWait time.Duration
	Timeout     time.Duration
}

type CacheConfig struct {
	TTL time.Duration
}

type CatalogConfig struct {
	// CSVPath optionally extends the built-in catalog with extra entries.
	CSVPath string
}

type ObservabilityConfig struct {
	MetricsEnabled bool
}

// Load reads configuration from environment variables. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			MaxUploadBytes:  int64(getEnvAsInt("MAX_UPLOAD_MB", 32)) << 20,
			ProcessTimeout:  getEnvAsDuration("PROCESS_TIMEOUT", 5*time.Minute),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Type:       getEnv("STORAGE_TYPE", "local"),
			LocalPath:  getEnv("STORAGE_LOCAL_PATH", "./data"),
			S3Bucket:   getEnv("STORAGE_S3_BUCKET", ""),
			S3Region:   getEnv("STORAGE_S3_REGION", ""),
			S3Endpoint: getEnv("STORAGE_S3_ENDPOINT", ""),
		},
		Remote: RemoteConfig{
			Enabled:     getEnvAsBool("REMOTE_LOOKUP_ENABLED", true),
			BaseURL:     getEnv("REMOTE_BASE_URL", "https://www.trekbikes.com"),
			RequestWait: getEnvAsDuration("REMOTE_REQUEST_WAIT", 500*time.Millisecond),
			Timeout:     getEnvAsDuration("REMOTE_TIMEOUT", 15*time.Second),
		},
		Cache: CacheConfig{
			TTL: getEnvAsDuration("CACHE_TTL", time.Hour),
		},
		Catalog: CatalogConfig{
			CSVPath: getEnv("CATALOG_CSV_PATH", ""),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
