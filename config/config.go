package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-driven settings for the editor API.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	SupabaseURL        string `envconfig:"SUPABASE_URL" required:"true"`
	SupabaseServiceKey string `envconfig:"SUPABASE_SERVICE_KEY" required:"true"`

	TranscriberURL     string        `envconfig:"TRANSCRIBER_URL"`
	TranscriberAPIKey  string        `envconfig:"TRANSCRIBER_API_KEY"`
	TranscriberTimeout time.Duration `envconfig:"TRANSCRIBER_TIMEOUT" default:"90s"`

	CORSAllowOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

// Load reads .env (if present) and the process environment into a
// Config. A missing .env file is not an error; required variables
// missing from the environment are.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
