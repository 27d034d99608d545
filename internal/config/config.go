package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the complete service configuration
type Config struct {
	Port        int    `toml:"port"`
	DatabaseURL string `toml:"database_url"`
	JWTSecret   string `toml:"jwt_secret"`

	Redis RedisConfig `toml:"redis"`
	Minio MinioConfig `toml:"minio"`

	// PresignExpiry bounds presigned object URLs; NonceTTL bounds issued
	// anti-forgery tokens.
	PresignExpirySeconds int `toml:"presign_expiry_seconds"`
	NonceTTLSeconds      int `toml:"nonce_ttl_seconds"`
}

// RedisConfig contains cache and nonce store settings
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MinioConfig contains object storage settings
type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`
	Bucket    string `toml:"bucket"`
}

func (c *Config) PresignExpiry() time.Duration {
	return time.Duration(c.PresignExpirySeconds) * time.Second
}

func (c *Config) NonceTTL() time.Duration {
	return time.Duration(c.NonceTTLSeconds) * time.Second
}

// Load builds the configuration from the environment, optionally layered on
// top of a TOML file named by CONFIG_FILE.
func Load() (*Config, error) {
	cfg := defaults()

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		if _, err := toml.DecodeFile(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Port: 8080,
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Minio: MinioConfig{
			Endpoint:  "localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
			Bucket:    "design-images",
		},
		PresignExpirySeconds: int((15 * time.Minute).Seconds()),
		NonceTTLSeconds:      int((12 * time.Hour).Seconds()),
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "REDIS_DB")
	setString(&cfg.Minio.Endpoint, "MINIO_ENDPOINT")
	setString(&cfg.Minio.AccessKey, "MINIO_ACCESS_KEY")
	setString(&cfg.Minio.SecretKey, "MINIO_SECRET_KEY")
	setString(&cfg.Minio.Bucket, "MINIO_BUCKET")
	setInt(&cfg.Port, "PORT")
	setInt(&cfg.PresignExpirySeconds, "PRESIGN_EXPIRY_SECONDS")
	setInt(&cfg.NonceTTLSeconds, "NONCE_TTL_SECONDS")
	if os.Getenv("MINIO_USE_SSL") == "true" {
		cfg.Minio.UseSSL = true
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
