package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPath       = "lenders.txt"
	DefaultKafkaTopic = "lender_events"
)

type Config struct {
	Path         string   // persistence file
	DatabaseURL  string   // when set, lenders live in PostgreSQL instead of Path
	KafkaBrokers []string // when set, ledger events are published
	KafkaTopic   string
}

// Load reads the given dotenv files, if they exist, and then the
// environment. Variables already set in the environment win over the files.
// With nothing set, the defaults reproduce the fixed lenders.txt setup.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		Path:        getenv("LENDER_FILE", DefaultPath),
		DatabaseURL: os.Getenv("LENDER_DATABASE_URL"),
		KafkaTopic:  getenv("LENDER_KAFKA_TOPIC", DefaultKafkaTopic),
	}
	for _, b := range strings.Split(os.Getenv("LENDER_KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
