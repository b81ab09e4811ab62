package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

type Config struct {
	Port    string
	Storage Storage
	Redis   Redis
	Admin   Admin
}

// Storage selects the persistence backend: "memory", "file", "sqlite",
// "postgres" or "redis".
type Storage struct {
	Backend     string
	FilePath    string
	SQLitePath  string
	PostgresDSN string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Admin struct {
	// Bcrypt hash of the unlock secret. When empty, SecretPlain is hashed
	// at boot (local single-user convenience).
	SecretHash  string
	SecretPlain string
	BcryptCost  int
}

func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port: getEnv("APP_PORT", "8080"),
		Storage: Storage{
			Backend:     getEnv("STORAGE_BACKEND", "sqlite"),
			FilePath:    getEnv("STORAGE_FILE_PATH", "inventory.json"),
			SQLitePath:  getEnv("STORAGE_SQLITE_PATH", "inventory.db"),
			PostgresDSN: getEnv("STORAGE_POSTGRES_DSN", ""),
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       atoiDefault(getEnv("REDIS_DB", "0"), 0),
		},
		Admin: Admin{
			SecretHash:  getEnv("ADMIN_SECRET_HASH", ""),
			SecretPlain: getEnv("ADMIN_SECRET", "admin"),
			BcryptCost:  atoiDefault(getEnv("BCRYPT_COST", "0"), 0),
		},
	}

	log.Info("config loaded",
		zap.String("port", cfg.Port),
		zap.String("storage_backend", cfg.Storage.Backend),
	)
	return cfg
}

func getEnv(key, def string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return def
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
