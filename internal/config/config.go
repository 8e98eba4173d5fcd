package config

import "os"

// Config holds the runtime settings of the server.
type Config struct {
	Port        string // HTTP listen port
	DatabaseURL string // Postgres DSN; empty means in-memory run storage
}

// Load reads configuration from the environment with local defaults.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return Config{
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}
