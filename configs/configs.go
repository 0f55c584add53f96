package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                      string
	DbUrl                     string
	OmdbApiUrl                string
	OmdbApiKey                string
	OmdbRequestTimeoutSec     int
	RedisUrl                  string
	RedisPassword             string
	WaitForRedisConnectionSec int
	RabbitMqUrl               string
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	Debug                     bool
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func GetOmdbRequestTimeout() time.Duration {
	return time.Duration(configs.OmdbRequestTimeoutSec) * time.Second
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.OmdbApiKey = os.Getenv("OMDB_API_KEY")
	if configs.OmdbApiKey == "" {
		// every search/fetch would fail without it, refuse to start
		log.Fatalf("missing required env variable: OMDB_API_KEY")
	}
	configs.OmdbApiUrl = os.Getenv("OMDB_API_URL")
	if configs.OmdbApiUrl == "" {
		configs.OmdbApiUrl = "https://www.omdbapi.com"
	}
	configs.OmdbRequestTimeoutSec, _ = strconv.Atoi(os.Getenv("OMDB_REQUEST_TIMEOUT_SEC"))
	if configs.OmdbRequestTimeoutSec <= 0 {
		configs.OmdbRequestTimeoutSec = 5
	}
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))
	configs.RabbitMqUrl = os.Getenv("RABBITMQ_URL")
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.Debug = os.Getenv("DEBUG") == "true"
}
