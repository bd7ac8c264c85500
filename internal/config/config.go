package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	Grading GradingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings for sample attachments.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// GradingConfig holds the grading engine's tunable parameters. The reference
// sample weight defaults to the SCA standard 350 g; the scoring weights are
// calibration defaults, not authoritative SCA constants.
type GradingConfig struct {
	ReferenceSampleWeightGrams       float64 `mapstructure:"reference_sample_weight_grams"`
	DefectDecay                      float64 `mapstructure:"defect_decay"`
	MoisturePenaltyPerPoint          float64 `mapstructure:"moisture_penalty_per_point"`
	WaterActivityPenaltyPerHundredth float64 `mapstructure:"water_activity_penalty_per_hundredth"`
	MaxMeasurementPenalty            float64 `mapstructure:"max_measurement_penalty"`
}

// Load reads configuration from environment variables with the CUPPERLY_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CUPPERLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "cupperly")
	v.SetDefault("db.password", "cupperly_secret")
	v.SetDefault("db.name", "cupperly_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "cupperly-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@cupperly.com")
	v.SetDefault("email.from_name", "Cupperly")

	// Grading defaults
	v.SetDefault("grading.reference_sample_weight_grams", 350.0)
	v.SetDefault("grading.defect_decay", 20.0)
	v.SetDefault("grading.moisture_penalty_per_point", 0.05)
	v.SetDefault("grading.water_activity_penalty_per_hundredth", 0.02)
	v.SetDefault("grading.max_measurement_penalty", 0.5)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "CUPPERLY_SERVER_PORT",
		"server.read_timeout":  "CUPPERLY_SERVER_READ_TIMEOUT",
		"server.write_timeout": "CUPPERLY_SERVER_WRITE_TIMEOUT",
		"server.environment":   "CUPPERLY_SERVER_ENVIRONMENT",
		"db.host":              "CUPPERLY_DB_HOST",
		"db.port":              "CUPPERLY_DB_PORT",
		"db.user":              "CUPPERLY_DB_USER",
		"db.password":          "CUPPERLY_DB_PASSWORD",
		"db.name":              "CUPPERLY_DB_NAME",
		"db.sslmode":           "CUPPERLY_DB_SSLMODE",
		"db.max_open":          "CUPPERLY_DB_MAX_OPEN",
		"db.max_idle":          "CUPPERLY_DB_MAX_IDLE",
		"s3.region":            "CUPPERLY_S3_REGION",
		"s3.bucket":            "CUPPERLY_S3_BUCKET",
		"s3.endpoint":          "CUPPERLY_S3_ENDPOINT",
		"s3.access_key":        "CUPPERLY_S3_ACCESS_KEY",
		"s3.secret_key":        "CUPPERLY_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "CUPPERLY_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "CUPPERLY_S3_PRESIGN_EXPIRY",
		"log.level":            "CUPPERLY_LOG_LEVEL",
		"log.format":           "CUPPERLY_LOG_FORMAT",
		"cors.allowed_origins": "CUPPERLY_CORS_ALLOWED_ORIGINS",
		"email.provider":       "CUPPERLY_EMAIL_PROVIDER",
		"email.region":         "CUPPERLY_EMAIL_REGION",
		"email.from_address":   "CUPPERLY_EMAIL_FROM_ADDRESS",
		"email.from_name":      "CUPPERLY_EMAIL_FROM_NAME",
		"grading.reference_sample_weight_grams":        "CUPPERLY_GRADING_REFERENCE_SAMPLE_WEIGHT_GRAMS",
		"grading.defect_decay":                         "CUPPERLY_GRADING_DEFECT_DECAY",
		"grading.moisture_penalty_per_point":           "CUPPERLY_GRADING_MOISTURE_PENALTY_PER_POINT",
		"grading.water_activity_penalty_per_hundredth": "CUPPERLY_GRADING_WATER_ACTIVITY_PENALTY_PER_HUNDREDTH",
		"grading.max_measurement_penalty":              "CUPPERLY_GRADING_MAX_MEASUREMENT_PENALTY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CUPPERLY_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CUPPERLY_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	cfg.Grading = GradingConfig{
		ReferenceSampleWeightGrams:       v.GetFloat64("grading.reference_sample_weight_grams"),
		DefectDecay:                      v.GetFloat64("grading.defect_decay"),
		MoisturePenaltyPerPoint:          v.GetFloat64("grading.moisture_penalty_per_point"),
		WaterActivityPenaltyPerHundredth: v.GetFloat64("grading.water_activity_penalty_per_hundredth"),
		MaxMeasurementPenalty:            v.GetFloat64("grading.max_measurement_penalty"),
	}

	return cfg, nil
}
