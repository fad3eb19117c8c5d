package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, mailbox
//   credentials, provider secrets), security settings
// - default: Values common across all environments (timezone, timeout, etc.),
//   standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Security SecurityConfig
	Captcha  CaptchaConfig
	Exchange ExchangeConfig
	Mail     MailConfig
	Pricing  PricingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// SecurityConfig drives the CSRF guard: which browser origins may fetch a
// token and how long an issued token stays valid.
type SecurityConfig struct {
	AllowedOrigins []string      `envconfig:"APP_ALLOWED_ORIGINS" required:"true"`
	CSRFTokenTTL   time.Duration `envconfig:"CSRF_TOKEN_TTL" default:"15m"`
	CookieDomain   string        `envconfig:"CSRF_COOKIE_DOMAIN" default:""`
	CookieSecure   bool          `envconfig:"CSRF_COOKIE_SECURE" default:"true"`
}

type CaptchaConfig struct {
	Secret    string `envconfig:"RECAPTCHA_SECRET_KEY" required:"true"`
	VerifyURL string `envconfig:"RECAPTCHA_VERIFY_URL" default:"https://www.google.com/recaptcha/api/siteverify"`
}

// ExchangeConfig is optional: an empty APIKey disables the rate fetch and
// checkout amounts degrade to zero.
type ExchangeConfig struct {
	APIKey        string `envconfig:"COIN_API_KEY" default:""`
	BaseURL       string `envconfig:"COIN_API_BASE_URL" default:"https://rest.coinapi.io/v1"`
	BaseCurrency  string `envconfig:"COIN_API_BASE_CURRENCY" default:"USD"`
	QuoteCurrency string `envconfig:"COIN_API_QUOTE_CURRENCY" default:"XMR"`
}

// MailConfig carries two credential sets: the contact account sends
// user-facing mail, the owner account receives and sends owner-facing mail.
type MailConfig struct {
	Host            string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port            int    `envconfig:"SMTP_PORT" default:"465"`
	ContactAddress  string `envconfig:"CONTACT_EMAIL" required:"true"`
	ContactPassword string `envconfig:"CONTACT_SMTP_PASSWORD" required:"true"`
	OwnerAddress    string `envconfig:"OWNER_EMAIL" required:"true"`
	OwnerPassword   string `envconfig:"OWNER_SMTP_PASSWORD" required:"true"`
}

// PricingConfig holds per-tier USD prices. All three default to the same
// figure; the duplication is placeholder pricing, not a contract.
type PricingConfig struct {
	Basic    float64 `envconfig:"PACKAGE_PRICE_BASIC" default:"999.99"`
	Standard float64 `envconfig:"PACKAGE_PRICE_STANDARD" default:"999.99"`
	Premium  float64 `envconfig:"PACKAGE_PRICE_PREMIUM" default:"999.99"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"https://webnebula.example", "https://www.webnebula.example"},
			CSRFTokenTTL:   15 * time.Minute,
			CookieSecure:   true,
		},
		Captcha: CaptchaConfig{
			Secret:    "test-secret",
			VerifyURL: "https://www.google.com/recaptcha/api/siteverify",
		},
		Mail: MailConfig{
			Host:            "localhost",
			Port:            2525,
			ContactAddress:  "contact@webnebula.example",
			ContactPassword: "test",
			OwnerAddress:    "owner@webnebula.example",
			OwnerPassword:   "test",
		},
		Pricing: PricingConfig{
			Basic:    999.99,
			Standard: 999.99,
			Premium:  999.99,
		},
	}
}
