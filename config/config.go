package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultCutoffDate is the inclusive upper bound on launch dates kept by
// the API pipeline when LAUNCH_CUTOFF_DATE is not set.
const DefaultCutoffDate = "2020-11-13"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	APIBaseURL  string
	WikiPageURL string

	CutoffDate time.Time

	MaxConcurrency int
	RateLimitMs    int

	APIOutputPath  string
	WikiOutputPath string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		APIBaseURL:  getEnv("SPACEX_API_BASE_URL", "https://api.spacexdata.com/v4"),
		WikiPageURL: getEnv("WIKI_PAGE_URL", "https://en.wikipedia.org/wiki/List_of_Falcon_9_launches"),

		CutoffDate: getEnvDate("LAUNCH_CUTOFF_DATE", DefaultCutoffDate),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 3),
		RateLimitMs:    getEnvInt("RATE_LIMIT_MS", 100),

		APIOutputPath:  getEnv("API_OUTPUT_PATH", "./output/spacex_api_data.csv"),
		WikiOutputPath: getEnv("WIKI_OUTPUT_PATH", "./output/spacex_web_scraped.csv"),
	}
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

func getEnvDate(key, fallback string) time.Time {
	raw := getEnv(key, fallback)
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		log.Printf("[config] Invalid date %q for %s, using default %s", raw, key, fallback)
		d, _ = time.Parse("2006-01-02", fallback)
	}
	return d
}
