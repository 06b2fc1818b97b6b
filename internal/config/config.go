package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID string
	Region    string
	LogLevel  string
	Port      string
}

// New reads configuration from the environment. A local .env file is loaded
// first when present; on Cloud Run the variables come from the service spec.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID: os.Getenv("PROJECTID"),
		Region:    os.Getenv("REGION"),
		LogLevel:  os.Getenv("LOGLEVEL"),
		Port:      portOrDefault(os.Getenv("PORT")),
	}
}

func portOrDefault(port string) string {
	if port == "" {
		return "8080"
	}
	return port
}
