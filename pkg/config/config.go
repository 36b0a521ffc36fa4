package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Backend names for the entity store.
const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

type Config struct {
	Port         string
	Env          string
	StoreBackend string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
}

// Load reads configuration from the environment, preferring a .env file
// when one is present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		StoreBackend: os.Getenv("STORE_BACKEND"),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      getEnv("MONGO_DB", "codestream"),
		JWTSecret:    getEnv("JWT_SECRET", "supersecretjwtkey"),
	}

	// The backend is fixed at process start: Mongo when configured,
	// otherwise the seeded in-memory store.
	if cfg.StoreBackend == "" {
		if cfg.MongoURI != "" {
			cfg.StoreBackend = BackendMongo
		} else {
			cfg.StoreBackend = BackendMemory
		}
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
