package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Closeout CloseoutConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type CloseoutConfig struct {
	Enabled  bool
	Schedule string // cron expression
}

// Load reads configuration from the environment (a .env file is picked up
// when present) and returns a typed Config. Missing values fall back to
// development defaults.
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("No .env file found, using environment variables: %v", err)
	}
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CLOSEOUT_ENABLED", true)
	v.SetDefault("CLOSEOUT_SCHEDULE", "0 21 * * *") // daily at 9 PM

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("SERVER_ENV"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		},
		Closeout: CloseoutConfig{
			Enabled:  v.GetBool("CLOSEOUT_ENABLED"),
			Schedule: v.GetString("CLOSEOUT_SCHEDULE"),
		},
	}

	log.Printf("Configuration loaded: port=%s env=%s closeout=%q",
		cfg.Server.Port, cfg.Server.Env, cfg.Closeout.Schedule)

	return cfg
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
