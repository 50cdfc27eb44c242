package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr          string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CDNBaseURL          string
	LookupBaseURL       string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	RateLimit           int
	RateLimitWindow     time.Duration
	URLCacheTTL         time.Duration
	S3Bucket            string
	S3Region            string
	S3Endpoint          string
	S3AccessKey         string
	S3SecretKey         string
	PostgresUser        string
	PostgresPassword    string
	PostgresHost        string
	PostgresPort        string
	PostgresDatabase    string
	PostgresSSLMode     string
}

func Load() *Config {
	cfg := &Config{
		ListenAddr:          getEnv("LISTEN_ADDR", ":8080"),
		CloudinaryCloudName: mustGetEnv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    mustGetEnv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: mustGetEnv("CLOUDINARY_API_SECRET"),
		CDNBaseURL:          getEnv("CDN_BASE_URL", "https://res.cloudinary.com"),
		LookupBaseURL:       getEnv("COUNTRY_LOOKUP_URL", "https://restcountries.com/v3.1"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		RateLimit:           getEnvInt("RATE_LIMIT", 100),
		RateLimitWindow:     getEnvDuration("RATE_LIMIT_WINDOW", 900*time.Second),
		URLCacheTTL:         getEnvDuration("URL_CACHE_TTL", 24*time.Hour),
		S3Bucket:            getEnv("S3_BUCKET", "flag-cache"),
		S3Region:            getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:          getEnv("S3_ENDPOINT", ""),
		S3AccessKey:         getEnv("AWS_ACCESS_KEY_ID", ""),
		S3SecretKey:         getEnv("AWS_SECRET_ACCESS_KEY", ""),
		PostgresUser:        getEnv("POSTGRES_USER", "flagproxy"),
		PostgresPassword:    getEnv("POSTGRES_PASSWORD", "password"),
		PostgresHost:        getEnv("POSTGRES_HOST", ""),
		PostgresPort:        getEnv("POSTGRES_PORT", "5432"),
		PostgresDatabase:    getEnv("POSTGRES_DATABASE", "flag_proxy"),
		PostgresSSLMode:     getEnv("POSTGRES_SSL_MODE", "disable"),
	}

	return cfg
}

// AccessLogEnabled reports whether requests should also be written to Postgres.
func (c *Config) AccessLogEnabled() bool {
	return c.PostgresHost != ""
}

// ByteCacheEnabled reports whether fetched image bytes should be cached in S3.
// The S3 index lives in Postgres, so both must be configured.
func (c *Config) ByteCacheEnabled() bool {
	return c.S3Endpoint != "" && c.AccessLogEnabled()
}

func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic("Missing required environment variable: " + key)
	}
	return value
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
