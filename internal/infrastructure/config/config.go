package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the runtime configuration, resolved from the environment (and .env
// through godotenv autoload in main).
//
// Supported env vars (local-friendly defaults):
//   - PORT (default: 8080)
//   - APP_ENV (default: production; "development" switches to console logs)
//   - LOG_LEVEL (default: info)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY (default: us-east-1/local/local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - VALUATIONS_TABLE, OPTIONS_TABLE
//   - ATTACHMENT_DRIVER (local|s3), S3_BUCKET, S3_ENDPOINT, UPLOAD_DIR, PUBLIC_BASE_URL
//   - JWT_SECRET (required outside development)
//   - REPOSITORY_TIMEOUT (default: 8s)
type Config struct {
	Port     int
	AppEnv   string
	LogLevel string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	ValuationsTable string
	OptionsTable    string

	AttachmentDriver string
	S3Bucket         string
	S3Endpoint       string
	UploadDir        string
	PublicBaseURL    string

	JWTSecret         string
	RepositoryTimeout time.Duration
}

// ErrMissingJWTSecret is returned by Validate when no signing secret is set
// outside development.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set outside development")

const devJWTSecret = "valuation-report-dev-secret"

const (
	AttachmentDriverLocal = "local"
	AttachmentDriverS3    = "s3"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("VALUATIONS_TABLE", "valuations")
	v.SetDefault("OPTIONS_TABLE", "valuation_options")
	v.SetDefault("ATTACHMENT_DRIVER", AttachmentDriverLocal)
	v.SetDefault("S3_BUCKET", "valuation-attachments")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("PUBLIC_BASE_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("REPOSITORY_TIMEOUT", "8s")
}

// Load reads the configuration from the environment.
func Load() *Config {
	return load(viper.New())
}

func load(v *viper.Viper) *Config {
	setDefaults(v)
	v.AutomaticEnv()

	timeout := v.GetDuration("REPOSITORY_TIMEOUT")
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	cfg := &Config{
		Port:               v.GetInt("PORT"),
		AppEnv:             strings.ToLower(v.GetString("APP_ENV")),
		LogLevel:           v.GetString("LOG_LEVEL"),
		AWSRegion:          v.GetString("AWS_REGION"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   v.GetString("DYNAMODB_ENDPOINT"),
		ValuationsTable:    v.GetString("VALUATIONS_TABLE"),
		OptionsTable:       v.GetString("OPTIONS_TABLE"),
		AttachmentDriver:   strings.ToLower(v.GetString("ATTACHMENT_DRIVER")),
		S3Bucket:           v.GetString("S3_BUCKET"),
		S3Endpoint:         v.GetString("S3_ENDPOINT"),
		UploadDir:          v.GetString("UPLOAD_DIR"),
		PublicBaseURL:      strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		RepositoryTimeout:  timeout,
	}
	if cfg.JWTSecret == "" && cfg.IsDevelopment() {
		cfg.JWTSecret = devJWTSecret
	}
	return cfg
}

// Validate reports settings the service cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
