package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Billing   BillingConfig
	SMTP      SMTPConfig
	Gateway   GatewayConfig
	OAuth     OAuthConfig
	Storage   StorageConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

// BillingConfig holds the pricing and bill-reference knobs.
type BillingConfig struct {
	TaxRate           float64 // GST applied on the base amount
	DepthRateCents    int64   // per linear foot, Borewell Installation only
	FallbackItemCents int64   // used when a selected item has no price
	BillPrefix        string
	QREndpoint        string
	DispatchTimeout   time.Duration
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// GatewayConfig points at the external WhatsApp/SMS providers.
type GatewayConfig struct {
	WhatsAppURL string
	SMSURL      string
	APIKey      string
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type StorageConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "borewell-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "borewell")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("BILLING_TAX_RATE", 0.18)
	viper.SetDefault("BILLING_DEPTH_RATE", 150.0) // rupees per foot
	viper.SetDefault("BILLING_FALLBACK_ITEM_PRICE", 1000.0)
	viper.SetDefault("BILLING_BILL_PREFIX", "BW")
	viper.SetDefault("BILLING_QR_ENDPOINT", "https://chart.googleapis.com/chart")
	viper.SetDefault("BILLING_DISPATCH_TIMEOUT_SECONDS", 15)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM_NAME", "Borewell Services & Equipment")
	viper.SetDefault("SMTP_FROM_EMAIL", "info@borewellservices.com")
	viper.SetDefault("STORAGE_PATH", "./storage")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		Billing: BillingConfig{
			TaxRate:           viper.GetFloat64("BILLING_TAX_RATE"),
			DepthRateCents:    int64(viper.GetFloat64("BILLING_DEPTH_RATE") * 100),
			FallbackItemCents: int64(viper.GetFloat64("BILLING_FALLBACK_ITEM_PRICE") * 100),
			BillPrefix:        viper.GetString("BILLING_BILL_PREFIX"),
			QREndpoint:        viper.GetString("BILLING_QR_ENDPOINT"),
			DispatchTimeout:   time.Duration(viper.GetInt("BILLING_DISPATCH_TIMEOUT_SECONDS")) * time.Second,
		},
		SMTP: SMTPConfig{
			Host:      viper.GetString("SMTP_HOST"),
			Port:      viper.GetInt("SMTP_PORT"),
			Username:  viper.GetString("SMTP_USERNAME"),
			Password:  viper.GetString("SMTP_PASSWORD"),
			FromName:  viper.GetString("SMTP_FROM_NAME"),
			FromEmail: viper.GetString("SMTP_FROM_EMAIL"),
		},
		Gateway: GatewayConfig{
			WhatsAppURL: viper.GetString("GATEWAY_WHATSAPP_URL"),
			SMSURL:      viper.GetString("GATEWAY_SMS_URL"),
			APIKey:      viper.GetString("GATEWAY_API_KEY"),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
			GoogleRedirectURL:  viper.GetString("GOOGLE_REDIRECT_URL"),
		},
		Storage: StorageConfig{
			Path: viper.GetString("STORAGE_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
