package config

import (
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	IsProduction bool

	Port      string
	JWTSecret string

	// DBDsn selects the MySQL database. Empty means the local sqlite file,
	// which is what dev setups run on.
	DBDsn string

	// dashboard cache tunables
	StatsCacheTTLSeconds int
	StatsCacheMaxItems   int
)

// loadDotEnv loads .env for non-production environments. Production reads
// host env only.
func loadDotEnv() {
	if os.Getenv("APP_ENV") == "production" {
		return
	}
	// .env is optional outside production; host env still applies
	_ = godotenv.Load()
}

func init() {
	loadDotEnv()

	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "" {
		AppEnv = "development"
	}
	if !slices.Contains([]string{"development", "staging", "production"}, AppEnv) {
		log.Fatal("environment variable APP_ENV must be 'development', 'staging' or 'production'")
	}
	IsProduction = AppEnv == "production"

	JWTSecret = os.Getenv("JWT_SECRET_KEY")
	if IsProduction && JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY must be set in production")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	DBDsn = os.Getenv("DB_DSN")
	if IsProduction && DBDsn == "" {
		log.Fatal("DB_DSN must be set in production")
	}

	StatsCacheTTLSeconds = atoiOr(os.Getenv("STATS_CACHE_TTL_SECONDS"), 60)
	StatsCacheMaxItems = atoiOr(os.Getenv("STATS_CACHE_MAX_ITEMS"), 500)

	log.Printf("[config] AppEnv=%s IsProduction=%v", AppEnv, IsProduction)
	log.Printf("[config] statsCache ttl=%ds max=%d", StatsCacheTTLSeconds, StatsCacheMaxItems)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
