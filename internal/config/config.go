package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Credential store kinds
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config holds all configuration for the application
type Config struct {
	APIBaseURL string
	Store      StoreConfig
	Session    SessionConfig
	Pages      PageConfig
}

// StoreConfig holds credential store configuration
type StoreConfig struct {
	Kind     string // "file" or "redis"
	FilePath string
	Redis    RedisConfig
}

// RedisConfig holds redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionConfig holds session guard configuration
type SessionConfig struct {
	CheckInterval time.Duration
}

// PageConfig holds per-view page sizes
type PageConfig struct {
	SosPageSize  int
	ZonePageSize int
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	storeKind := strings.TrimSpace(getEnv("CRED_STORE", StoreFile))
	if storeKind != StoreFile && storeKind != StoreRedis {
		return nil, fmt.Errorf("invalid CRED_STORE: '%s' (must be 'file' or 'redis')", storeKind)
	}

	checkSecs, _ := strconv.Atoi(getEnv("SESSION_CHECK_SECONDS", "30"))
	if checkSecs < 1 {
		checkSecs = 30
	}

	sosPageSize, _ := strconv.Atoi(getEnv("PAGE_SIZE_SOS", "5"))
	zonePageSize, _ := strconv.Atoi(getEnv("PAGE_SIZE_ZONES", "8"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	config := &Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Store: StoreConfig{
			Kind:     storeKind,
			FilePath: getEnv("CRED_FILE", defaultCredFile()),
			Redis: RedisConfig{
				Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       redisDB,
			},
		},
		Session: SessionConfig{
			CheckInterval: time.Duration(checkSecs) * time.Second,
		},
		Pages: PageConfig{
			SosPageSize:  sosPageSize,
			ZonePageSize: zonePageSize,
		},
	}

	log.Printf("✅ Configuration loaded successfully [STORE: %s]", storeKind)
	return config, nil
}

// defaultCredFile places the credential file under the user's home
func defaultCredFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".disasterwatch_credentials.json"
	}
	return filepath.Join(home, ".disasterwatch", "credentials.json")
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
