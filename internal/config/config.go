// Package config concentra a leitura de ambiente em um único ponto: nada de
// os.Getenv espalhado pelos call sites.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	APIBaseURL  string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	AllowedOrigins []string
}

// Load lê o .env (se existir) e monta a configuração. Só DATABASE_URL é
// obrigatória; o resto tem default de desenvolvimento.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),

		RabbitUser: getEnv("RABBITMQ_USER", "user"),
		RabbitPass: getEnv("RABBITMQ_PASS", "password"),
		RabbitHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),

		MailHost: os.Getenv("MAIL_HOST"),
		MailPort: getEnvInt("MAIL_PORT", 587),
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),
		MailFrom: getEnv("MAIL_FROM", "nao-responda@zapcapta.com.br"),

		AllowedOrigins: []string{getEnv("DASHBOARD_ORIGIN", "http://localhost:5173"), "*"},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL não definida")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
