package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the configuration for the recommendation service
type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	TMDB      TMDBConfig
	Recommend RecommendConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
}

// DatasetConfig holds the movie dataset location
type DatasetConfig struct {
	Path string
}

// TMDBConfig holds the poster lookup API configuration
type TMDBConfig struct {
	APIKey         string
	BaseURL        string
	ImageBaseURL   string
	RequestTimeout time.Duration
}

// RecommendConfig holds ranking defaults
type RecommendConfig struct {
	DefaultTopN int
	MaxTopN     int
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: GetStringEnv("SERVER_PORT", ":8080"),
		},
		Dataset: DatasetConfig{
			Path: GetStringEnv("DATASET_PATH", "./data/tmdb_5000_movies.csv"),
		},
		TMDB: TMDBConfig{
			APIKey:         GetStringEnv("TMDB_API_KEY", ""),
			BaseURL:        GetStringEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			ImageBaseURL:   GetStringEnv("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p/w500"),
			RequestTimeout: GetDurationEnv("TMDB_REQUEST_TIMEOUT", 10*time.Second),
		},
		Recommend: RecommendConfig{
			DefaultTopN: GetIntEnv("RECOMMEND_DEFAULT_TOP_N", 10),
			MaxTopN:     GetIntEnv("RECOMMEND_MAX_TOP_N", 5000),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
