package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Storage
	BoltPath string `mapstructure:"BOLT_PATH"` // empty = in-memory (demo mode)

	// Redis — receipt job queue and price-check cache; optional
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	JWTRefreshHours    int    `mapstructure:"JWT_REFRESH_HOURS"`

	// SMTP — order receipt emails
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Payment rails — simulated redirects, none of them confirm completion
	MobileMoneyUSSD    string `mapstructure:"MOBILE_MONEY_USSD"`
	MerchantCode       string `mapstructure:"MERCHANT_CODE"`
	BankRedirectURL    string `mapstructure:"BANK_REDIRECT_URL"`
	ReceiptStoragePath string `mapstructure:"RECEIPT_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 3)
	viper.SetDefault("BOLT_PATH", "mechanic.db")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("JWT_REFRESH_HOURS", 24)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("MOBILE_MONEY_USSD", "*150*00")
	viper.SetDefault("MERCHANT_CODE", "545454")
	viper.SetDefault("BANK_REDIRECT_URL", "https://pay.example-bank.co.tz/checkout")
	viper.SetDefault("RECEIPT_STORAGE_PATH", "/tmp/mechanic/receipts")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
