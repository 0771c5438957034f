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
	Server   ServerConfig
	DB       DBConfig
	S3       S3Config
	Model    ModelConfig
	OCR      OCRConfig
	Registry RegistryConfig
	Log      LogConfig
	CORS     CORSConfig
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

// S3Config holds settings for archival of uploaded source documents.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Enabled   bool   `mapstructure:"enabled"`
}

// ModelConfig holds LLM provider settings.
type ModelConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	TimeoutSecs int     `mapstructure:"timeout_secs"`
}

// OCRConfig holds tesseract settings for the image extraction path.
type OCRConfig struct {
	Tesseract   string `mapstructure:"tesseract"`
	Languages   string `mapstructure:"languages"`
	TessdataDir string `mapstructure:"tessdata_dir"`
}

// RegistryConfig points at the external JSON sources for document types
// and verification checklists. Empty paths mean built-in defaults.
type RegistryConfig struct {
	DocumentTypesPath string `mapstructure:"document_types_path"`
	ChecklistsPath    string `mapstructure:"checklists_path"`
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

// Load reads configuration from environment variables with the FINODEX_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FINODEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "finodex")
	v.SetDefault("db.password", "finodex_secret")
	v.SetDefault("db.name", "finodex_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "eu-central-1")
	v.SetDefault("s3.bucket", "finodex-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.enabled", false)

	// Model defaults
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.model", "claude-sonnet-4-20250514")
	v.SetDefault("model.max_tokens", 4096)
	v.SetDefault("model.temperature", 0.1)
	v.SetDefault("model.timeout_secs", 120)

	// OCR defaults: German plus English, the documents are bilingual.
	v.SetDefault("ocr.tesseract", "tesseract")
	v.SetDefault("ocr.languages", "deu+eng")
	v.SetDefault("ocr.tessdata_dir", "")

	// Registry defaults
	v.SetDefault("registry.document_types_path", "")
	v.SetDefault("registry.checklists_path", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "FINODEX_SERVER_PORT",
		"server.read_timeout":          "FINODEX_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "FINODEX_SERVER_WRITE_TIMEOUT",
		"server.environment":           "FINODEX_SERVER_ENVIRONMENT",
		"db.host":                      "FINODEX_DB_HOST",
		"db.port":                      "FINODEX_DB_PORT",
		"db.user":                      "FINODEX_DB_USER",
		"db.password":                  "FINODEX_DB_PASSWORD",
		"db.name":                      "FINODEX_DB_NAME",
		"db.sslmode":                   "FINODEX_DB_SSLMODE",
		"db.max_open":                  "FINODEX_DB_MAX_OPEN",
		"db.max_idle":                  "FINODEX_DB_MAX_IDLE",
		"s3.region":                    "FINODEX_S3_REGION",
		"s3.bucket":                    "FINODEX_S3_BUCKET",
		"s3.endpoint":                  "FINODEX_S3_ENDPOINT",
		"s3.access_key":                "FINODEX_S3_ACCESS_KEY",
		"s3.secret_key":                "FINODEX_S3_SECRET_KEY",
		"s3.enabled":                   "FINODEX_S3_ENABLED",
		"model.api_key":                "FINODEX_MODEL_API_KEY",
		"model.model":                  "FINODEX_MODEL_MODEL",
		"model.max_tokens":             "FINODEX_MODEL_MAX_TOKENS",
		"model.temperature":            "FINODEX_MODEL_TEMPERATURE",
		"model.timeout_secs":           "FINODEX_MODEL_TIMEOUT_SECS",
		"ocr.tesseract":                "FINODEX_OCR_TESSERACT",
		"ocr.languages":                "FINODEX_OCR_LANGUAGES",
		"ocr.tessdata_dir":             "FINODEX_OCR_TESSDATA_DIR",
		"registry.document_types_path": "FINODEX_REGISTRY_DOCUMENT_TYPES_PATH",
		"registry.checklists_path":     "FINODEX_REGISTRY_CHECKLISTS_PATH",
		"log.level":                    "FINODEX_LOG_LEVEL",
		"log.format":                   "FINODEX_LOG_FORMAT",
		"cors.allowed_origins":         "FINODEX_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FINODEX_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FINODEX_SERVER_PORT") == "" {
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
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		Enabled:   v.GetBool("s3.enabled"),
	}
	cfg.Model = ModelConfig{
		APIKey:      v.GetString("model.api_key"),
		Model:       v.GetString("model.model"),
		MaxTokens:   v.GetInt("model.max_tokens"),
		Temperature: v.GetFloat64("model.temperature"),
		TimeoutSecs: v.GetInt("model.timeout_secs"),
	}
	cfg.OCR = OCRConfig{
		Tesseract:   v.GetString("ocr.tesseract"),
		Languages:   v.GetString("ocr.languages"),
		TessdataDir: v.GetString("ocr.tessdata_dir"),
	}
	cfg.Registry = RegistryConfig{
		DocumentTypesPath: v.GetString("registry.document_types_path"),
		ChecklistsPath:    v.GetString("registry.checklists_path"),
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
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
