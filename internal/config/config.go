package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID       string
	Port            string
	LogLevel        string
	LogFormat       string
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration
}

// New reads the environment, loading a .env file first when one exists.
// Variables already set in the environment win over the file.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID:       os.Getenv("PROJECTID"),
		Port:            getEnv("PORT", "8080"),
		LogLevel:        os.Getenv("LOGLEVEL"),
		LogFormat:       os.Getenv("LOGFORMAT"),
		RateLimitRPS:    getFloat("RATELIMITRPS", 0),
		RateLimitBurst:  getInt("RATELIMITBURST", 20),
		ShutdownTimeout: getDuration("SHUTDOWNTIMEOUT", 10*time.Second),

		ReadHeaderTimeout: getDuration("READHEADERTIMEOUT", 5*time.Second),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
