package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Workforce WorkforceConfig
	Payment   PaymentConfig
	Geocode   GeocodeConfig
	Mail      MailConfig
	Jobs      JobsConfig
	Reports   ReportsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Taipei"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Payment-Signature"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Taipei"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// WorkforceConfig drives the capacity ledger. TotalWorkers is the default
// per-hour workforce used when a time_slots row has no explicit override.
type WorkforceConfig struct {
	TotalWorkers  int           `envconfig:"WORKFORCE_TOTAL_WORKERS" default:"4"`
	LockTTL       time.Duration `envconfig:"WORKFORCE_LOCK_TTL" default:"30m"`
	ServiceLat    float64       `envconfig:"WORKFORCE_SERVICE_ORIGIN_LAT" default:"25.0330"`
	ServiceLng    float64       `envconfig:"WORKFORCE_SERVICE_ORIGIN_LNG" default:"121.5654"`
	ServiceRadius float64       `envconfig:"WORKFORCE_SERVICE_RADIUS_KM" default:"15"`
	TimeZone      string        `envconfig:"WORKFORCE_TIMEZONE" default:"Asia/Taipei"`
}

type PaymentConfig struct {
	WebhookSecret string `envconfig:"PAYMENT_WEBHOOK_SECRET" required:"true"`
}

type GeocodeConfig struct {
	APIKey  string        `envconfig:"GEOCODE_API_KEY" default:""`
	BaseURL string        `envconfig:"GEOCODE_BASE_URL" default:"https://maps.googleapis.com/maps/api/geocode/json"`
	Timeout time.Duration `envconfig:"GEOCODE_TIMEOUT" default:"10s"`
}

type MailConfig struct {
	APIKey  string        `envconfig:"MAIL_API_KEY" default:""`
	BaseURL string        `envconfig:"MAIL_BASE_URL" default:"https://api.resend.com"`
	From    string        `envconfig:"MAIL_FROM" default:"CoolSlate <noreply@coolslate.app>"`
	Timeout time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

type JobsConfig struct {
	ReclaimInterval   time.Duration `envconfig:"JOBS_RECLAIM_INTERVAL" default:"5m"`
	UnpaidOrderMaxAge time.Duration `envconfig:"JOBS_UNPAID_ORDER_MAX_AGE" default:"30m"`
	DispatchHour      int           `envconfig:"JOBS_DISPATCH_HOUR" default:"15"`
	DispatchHorizon   int           `envconfig:"JOBS_DISPATCH_HORIZON_DAYS" default:"14"`
	MaxFailuresAlert  int           `envconfig:"JOBS_MAX_CONSECUTIVE_FAILURES" default:"5"`
}

type ReportsConfig struct {
	Dir          string `envconfig:"REPORTS_DIR" default:"./completion-reports"`
	MaxSizeBytes int64  `envconfig:"REPORTS_MAX_SIZE_BYTES" default:"10485760"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Taipei",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Taipei",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Workforce: WorkforceConfig{
			TotalWorkers:  4,
			LockTTL:       30 * time.Minute,
			ServiceLat:    25.0330,
			ServiceLng:    121.5654,
			ServiceRadius: 15,
			TimeZone:      "Asia/Taipei",
		},
		Payment: PaymentConfig{
			WebhookSecret: "test-webhook-secret",
		},
		Jobs: JobsConfig{
			ReclaimInterval:   5 * time.Minute,
			UnpaidOrderMaxAge: 30 * time.Minute,
			DispatchHour:      15,
			DispatchHorizon:   14,
			MaxFailuresAlert:  5,
		},
		Reports: ReportsConfig{
			Dir:          "./test-reports",
			MaxSizeBytes: 10 << 20,
		},
	}
}
