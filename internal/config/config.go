package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Session  SessionConfig
	Admin    AdminConfig
	Business BusinessConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// AdminConfig seeds the default administrator when no record exists yet.
type AdminConfig struct {
	User string
	Pass string
}

type BusinessConfig struct {
	Name string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "orderdesk")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "orderdesk")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SECRET_KEY", "dev-secret-key")
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("ADMIN_USER", "admin")
	viper.SetDefault("ADMIN_PASS", "password")
	viper.SetDefault("BUSINESS_NAME", "Pookie Sells")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Session: SessionConfig{
			Secret: viper.GetString("SECRET_KEY"),
			TTL:    sessionTTL,
		},
		Admin: AdminConfig{
			User: viper.GetString("ADMIN_USER"),
			Pass: viper.GetString("ADMIN_PASS"),
		},
		Business: BusinessConfig{
			Name: viper.GetString("BUSINESS_NAME"),
		},
	}

	return cfg, nil
}
