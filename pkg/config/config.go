package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	UploadLocal = "local"
	UploadR2    = "r2"

	TransportSMTP   = "smtp"
	TransportResend = "resend"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Upload   UploadConfig
	Email    EmailConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port          string
	Env           string
	LogLevel      string
	PublicDir     string
	DashboardPage string
}

type DatabaseConfig struct {
	Driver      string
	MongoURI    string
	UsersDB     string
	DataDB      string
	PostgresDSN string
}

type UploadConfig struct {
	Backend       string
	Dir           string // relative to Server.PublicDir
	StagingDir    string
	MaxBytes      int64
	SweepSchedule string
	StagingTTL    time.Duration

	R2AccountID string
	R2AccessKey string
	R2SecretKey string
	R2Bucket    string
}

type EmailConfig struct {
	Transport    string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	From         string
	SupportEmail string
	ResendAPIKey string
}

type SessionConfig struct {
	RedisURL     string
	TTL          time.Duration
	CookieSecure bool
}

func Load() *Config {
	godotenv.Load() // .env is optional outside development

	return &Config{
		Server: ServerConfig{
			Port:          getEnv("PORT", "3000"),
			Env:           getEnv("APP_ENV", "development"),
			LogLevel:      getEnv("LOG_LEVEL", "info"),
			PublicDir:     getEnv("PUBLIC_DIR", "public"),
			DashboardPage: getEnv("DASHBOARD_PAGE", "dist/dashboard.html"),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(getEnv("DATABASE_DRIVER", DriverMongo)),
			MongoURI:    getEnv("MONGO_URI", ""),
			UsersDB:     getEnv("MONGO_USERS_DB", "Users"),
			DataDB:      getEnv("MONGO_DATA_DB", "Data"),
			PostgresDSN: getEnv("DATABASE_URL", ""),
		},
		Upload: UploadConfig{
			Backend:       strings.ToLower(getEnv("UPLOAD_BACKEND", UploadLocal)),
			Dir:           getEnv("UPLOAD_DIR", "uploads/payments"),
			StagingDir:    getEnv("UPLOAD_STAGING_DIR", "tmp/uploads"),
			MaxBytes:      getEnvInt64("UPLOAD_MAX_BYTES", 5*1024*1024),
			SweepSchedule: getEnv("STAGING_SWEEP_SCHEDULE", "@hourly"),
			StagingTTL:    getEnvDuration("STAGING_TTL", 24*time.Hour),
			R2AccountID:   getEnv("R2_ACCOUNT_ID", ""),
			R2AccessKey:   getEnv("R2_ACCESS_KEY", ""),
			R2SecretKey:   getEnv("R2_SECRET_KEY", ""),
			R2Bucket:      getEnv("R2_BUCKET_NAME", ""),
		},
		Email: EmailConfig{
			Transport:    strings.ToLower(getEnv("EMAIL_TRANSPORT", TransportSMTP)),
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     int(getEnvInt64("SMTP_PORT", 587)),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			From:         getEnv("EMAIL_FROM", ""),
			SupportEmail: getEnv("SUPPORT_EMAIL", ""),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		},
		Session: SessionConfig{
			RedisURL:     getEnv("REDIS_URL", ""),
			TTL:          getEnvDuration("SESSION_TTL", 24*time.Hour),
			CookieSecure: getEnvBool("COOKIE_SECURE", false),
		},
	}
}

// ValidateDatabase checks only the settings needed to reach the store, for the
// migrate and seed commands.
func (c *Config) ValidateDatabase() error {
	missing, err := c.missingDatabase()
	if err != nil {
		return err
	}
	return missingError(missing)
}

func (c *Config) missingDatabase() ([]string, error) {
	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.MongoURI == "" {
			return []string{"MONGO_URI"}, nil
		}
	case DriverPostgres:
		if c.Database.PostgresDSN == "" {
			return []string{"DATABASE_URL"}, nil
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	return nil, nil
}

// Validate reports every setting missing for the selected backends.
func (c *Config) Validate() error {
	missing, err := c.missingDatabase()
	if err != nil {
		return err
	}

	switch c.Upload.Backend {
	case UploadLocal:
	case UploadR2:
		for key, val := range map[string]string{
			"R2_ACCOUNT_ID":  c.Upload.R2AccountID,
			"R2_ACCESS_KEY":  c.Upload.R2AccessKey,
			"R2_SECRET_KEY":  c.Upload.R2SecretKey,
			"R2_BUCKET_NAME": c.Upload.R2Bucket,
		} {
			if val == "" {
				missing = append(missing, key)
			}
		}
	default:
		return fmt.Errorf("unsupported UPLOAD_BACKEND %q", c.Upload.Backend)
	}

	switch c.Email.Transport {
	case TransportSMTP:
		if c.Email.SMTPHost == "" {
			missing = append(missing, "SMTP_HOST")
		}
	case TransportResend:
		if c.Email.ResendAPIKey == "" {
			missing = append(missing, "RESEND_API_KEY")
		}
	default:
		return fmt.Errorf("unsupported EMAIL_TRANSPORT %q", c.Email.Transport)
	}
	if c.Email.From == "" {
		missing = append(missing, "EMAIL_FROM")
	}
	if c.Email.SupportEmail == "" {
		missing = append(missing, "SUPPORT_EMAIL")
	}

	return missingError(missing)
}

func missingError(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if n, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return n
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}
