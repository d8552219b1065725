package globals

import (
	"log"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"

// Config carries all process-wide configuration. It is built once in main
// and passed by reference; nothing reads the environment after startup.
type Config struct {
	Port       string
	MongoURI   string
	MongoDB    string
	RedisAddr  string
	JWTSecret  []byte
	BcryptCost int
}

func Load() *Config {
	cfg := &Config{
		Port:       getenv("PORT", "8080"),
		MongoURI:   getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:    getenv("MONGODB_DB", "voyago"),
		RedisAddr:  getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:  []byte(os.Getenv("JWT_SECRET")),
		BcryptCost: bcrypt.DefaultCost,
	}

	if len(cfg.JWTSecret) == 0 {
		log.Println("JWT_SECRET not set; using insecure development secret")
		cfg.JWTSecret = []byte("voyago-dev-secret")
	}

	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		cost, err := strconv.Atoi(costStr)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		cfg.BcryptCost = cost
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
