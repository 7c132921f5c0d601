package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultQueryTimeout     = 5 * time.Second
	DefaultTopologyCacheTTL = time.Hour
	DefaultOutboxRetention  = 168 * time.Hour
	DefaultRelayBatch       = 100
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DBQueryTimeout time.Duration

	RedisAddr        string
	TopologyCacheTTL time.Duration

	KafkaHost                  string
	KafkaShipmentChangedTopic string
	OutboxRelayBatch          int
	OutboxRetention           time.Duration

	BcryptCost int
	SeedPath   string
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	config := Config{
		HTTPPort:                  getEnv("HTTP_PORT", "8080"),
		DBHost:                    getEnv("DB_HOST", "localhost"),
		DBPort:                    getEnv("DB_PORT", "5432"),
		DBUser:                    os.Getenv("DB_USER"),
		DBPassword:                os.Getenv("DB_PASSWORD"),
		DBName:                    os.Getenv("DB_NAME"),
		DBSslMode:                 getEnv("DB_SSLMODE", "disable"),
		RedisAddr:                 os.Getenv("REDIS_ADDR"),
		KafkaHost:                 os.Getenv("KAFKA_HOST"),
		KafkaShipmentChangedTopic: getEnv("KAFKA_SHIPMENT_CHANGED_TOPIC", "shipment.changed"),
		SeedPath:                  getEnv("SEED_PATH", "seed.json"),
	}

	var err error
	if config.DBQueryTimeout, err = getDuration("DB_QUERY_TIMEOUT", DefaultQueryTimeout); err != nil {
		return Config{}, err
	}
	if config.TopologyCacheTTL, err = getDuration("TOPOLOGY_CACHE_TTL", DefaultTopologyCacheTTL); err != nil {
		return Config{}, err
	}
	if config.OutboxRetention, err = getDuration("OUTBOX_RETENTION", DefaultOutboxRetention); err != nil {
		return Config{}, err
	}
	if config.OutboxRelayBatch, err = getInt("OUTBOX_RELAY_BATCH", DefaultRelayBatch); err != nil {
		return Config{}, err
	}
	if config.BcryptCost, err = getInt("BCRYPT_COST", 0); err != nil {
		return Config{}, err
	}

	return config, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, v)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
