package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Session  SessionConfig
	OTP      OTPConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	// URL is the full connection string (DATABASE_URL). Empty selects the
	// in-memory fallback store.
	URL      string
	MaxConns int32
}

type CORSConfig struct {
	FrontendURL string
	BackendURL  string
}

type SessionConfig struct {
	ExpiryHours int
}

type OTPConfig struct {
	ExpiryMinutes int
	Length        int
}

// AdminConfig seeds an initial admin account when the user table is empty.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "ticket-booking")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ADMIN_NAME", "Administrator")

	// .env is optional; environment variables alone are enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		CORS: CORSConfig{
			FrontendURL: viper.GetString("REACT_APP_FRONTEND_URL"),
			BackendURL:  viper.GetString("REACT_APP_BACKEND_URL"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Name:     viper.GetString("ADMIN_NAME"),
		},
	}

	return config, nil
}
