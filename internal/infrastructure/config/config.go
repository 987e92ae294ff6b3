package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")

type DBConfig struct {
	// URL, when set, wins over the discrete fields.
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // minutes
	AutoMigrate     bool
}

// DSN returns the postgres connection string.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone,
	)
}

type MercadoPagoConfig struct {
	AccessToken string
	// AppURL is the public base for back URLs and the notification URL.
	AppURL  string
	Timeout time.Duration
}

type Config struct {
	Port               int
	DB                 DBConfig
	JWTSecret          string
	MercadoPago        MercadoPagoConfig
	SearchCandidateCap int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		DB: DBConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "postgres"),
			User:            getEnv("DB_USER", "bokaboka"),
			Password:        getEnv("DB_PASSWORD", "bokaboka"),
			Name:            getEnv("DB_NAME", "bokaboka"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "America/Sao_Paulo"),
			Port:            getEnvInt("DB_PORT", 5432),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
			AutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", true),
		},
		JWTSecret: getEnv("JWT_SECRET", ""),
		MercadoPago: MercadoPagoConfig{
			AccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
			AppURL:      getEnv("APP_URL", "http://localhost:8080"),
			Timeout:     getEnvDuration("MERCADOPAGO_TIMEOUT", 5*time.Second),
		},
		SearchCandidateCap: getEnvInt("SEARCH_CANDIDATE_CAP", 500),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.DB.URL == "" && (cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "") {
		return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("5s") or plain seconds ("5").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if s, err := strconv.Atoi(v); err == nil {
		return time.Duration(s) * time.Second
	}
	return def
}
