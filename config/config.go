package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AdminAccount is one pre-configured administrator. The list is built once
// at startup and never written to afterwards; there is no signup path.
type AdminAccount struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

type Config struct {
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	Port          string
	Admins        []AdminAccount
}

// bcrypt hash of the default dev password "admin123"
const defaultAdminHash = "$2b$10$SVoFICZezIHlZyb8P5ijT.rB1mhPSsgVOEhMoNHIaZ0Rg3kM02oyS"

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		MongoURI:      getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "chatty"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Port:          getEnv("PORT", "5000"),
		Admins: []AdminAccount{
			{
				ID:           1,
				Email:        getEnv("ADMIN_EMAIL", "admin@chatty.com"),
				Name:         getEnv("ADMIN_NAME", "Admin User"),
				PasswordHash: getEnv("ADMIN_PASSWORD_HASH", defaultAdminHash),
			},
		},
	}

	return cfg
}

// FindAdminByEmail returns the configured admin with the given email, or nil.
func (c *Config) FindAdminByEmail(email string) *AdminAccount {
	for i := range c.Admins {
		if c.Admins[i].Email == email {
			return &c.Admins[i]
		}
	}
	return nil
}

// FindAdminByID returns the configured admin with the given id, or nil.
func (c *Config) FindAdminByID(id int) *AdminAccount {
	for i := range c.Admins {
		if c.Admins[i].ID == id {
			return &c.Admins[i]
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
