package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Qwen     QwenConfig
	Upload   UploadConfig
	Pipeline PipelineConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Enabled reports whether persistence is configured at all. An empty DB_HOST
// means the service runs extraction-only, which is a valid state.
func (c *DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// QwenConfig points at an OpenAI-compatible chat-completions endpoint
// (DashScope compatible-mode by default).
type QwenConfig struct {
	APIURL      string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

type UploadConfig struct {
	MaxSize int64
}

// PipelineConfig carries the two extraction policies: what type an unmarked
// amount gets, and which side of an ambiguous slash date is the day.
type PipelineConfig struct {
	DefaultType string // "unknown" or "credit"
	DateOrder   string // "day-first" or "month-first"
}

func Load() (*Config, error) {
	// .env is optional; environment variables alone are fine (Docker/K8s).
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	bodyLimit, _ := strconv.Atoi(getEnv("SERVER_BODY_LIMIT_MB", "8"))
	maxUpload, _ := strconv.ParseInt(getEnv("UPLOAD_MAX_SIZE_MB", "5"), 10, 64)
	temperature, _ := strconv.ParseFloat(getEnv("QWEN_TEMPERATURE", "0.1"), 64)
	maxTokens, _ := strconv.Atoi(getEnv("QWEN_MAX_TOKENS", "2000"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			BodyLimit:    bodyLimit * 1024 * 1024,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "ledgerlens"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Qwen: QwenConfig{
			APIURL:      getEnv("QWEN_API_URL", "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"),
			APIKey:      getEnv("QWEN_API_KEY", ""),
			Model:       getEnv("QWEN_MODEL", "qwen-vl-max"),
			Temperature: temperature,
			MaxTokens:   maxTokens,
		},
		Upload: UploadConfig{
			MaxSize: maxUpload * 1024 * 1024,
		},
		Pipeline: PipelineConfig{
			DefaultType: getEnv("PIPELINE_DEFAULT_TYPE", "unknown"),
			DateOrder:   getEnv("PIPELINE_DATE_ORDER", "day-first"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
