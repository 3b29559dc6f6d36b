package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	// DatabaseURL enables loading question banks from Postgres; empty
	// means the embedded banks are used.
	DatabaseURL string

	// RedisURL enables the Redis session store; empty means in-memory.
	RedisURL string

	// KafkaBrokers enables the Kafka event publisher; empty means events
	// are recorded in-process only.
	KafkaBrokers []string
	EventTopic   string

	// SessionTTLMinutes bounds how long an abandoned session is kept.
	SessionTTLMinutes int

	// RandomSeed pins the sampler's permutations when non-zero; 0 means
	// seed from the clock.
	RandomSeed int64
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	ttl, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "120"))
	if err != nil || ttl <= 0 {
		ttl = 120
	}

	seed, _ := strconv.ParseInt(getEnv("RANDOM_SEED", "0"), 10, 64)

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		KafkaBrokers:      brokers,
		EventTopic:        getEnv("EVENT_TOPIC", "practice.sessions"),
		SessionTTLMinutes: ttl,
		RandomSeed:        seed,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
