package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	OCR        OCRConfig
	Completion CompletionConfig
	Upload     UploadConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OCRConfig holds OCR.space provider settings.
type OCRConfig struct {
	APIKey            string `mapstructure:"api_key"`
	Endpoint          string `mapstructure:"endpoint"`
	Language          string `mapstructure:"language"`
	Engine            int    `mapstructure:"engine"`
	DetectOrientation bool   `mapstructure:"detect_orientation"`
	TimeoutSecs       int    `mapstructure:"timeout_secs"`
}

// CompletionConfig holds LLM completion provider settings.
type CompletionConfig struct {
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	TimeoutSecs int     `mapstructure:"timeout_secs"`
}

// UploadConfig holds upload validation settings.
type UploadConfig struct {
	MaxFileSizeBytes int64 `mapstructure:"max_file_size_bytes"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the VIETSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VIETSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// OCR provider defaults
	v.SetDefault("ocr.api_key", "")
	v.SetDefault("ocr.endpoint", "https://api.ocr.space/parse/image")
	v.SetDefault("ocr.language", "eng")
	v.SetDefault("ocr.engine", 2)
	v.SetDefault("ocr.detect_orientation", true)
	v.SetDefault("ocr.timeout_secs", 60)

	// Completion provider defaults
	v.SetDefault("completion.provider", "openai")
	v.SetDefault("completion.api_key", "")
	v.SetDefault("completion.model", "gpt-4o")
	v.SetDefault("completion.max_tokens", 500)
	v.SetDefault("completion.temperature", 0.2)
	v.SetDefault("completion.timeout_secs", 120)

	// Upload defaults
	v.SetDefault("upload.max_file_size_bytes", 5_000_000)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys. The env name is
	// the prefixed, upper-cased key with dots replaced by underscores.
	boundKeys := []string{
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.environment",
		"log.level",
		"log.format",
		"ocr.api_key",
		"ocr.endpoint",
		"ocr.language",
		"ocr.engine",
		"ocr.detect_orientation",
		"ocr.timeout_secs",
		"completion.provider",
		"completion.api_key",
		"completion.model",
		"completion.max_tokens",
		"completion.temperature",
		"completion.timeout_secs",
		"upload.max_file_size_bytes",
		"cors.allowed_origins",
	}
	for _, key := range boundKeys {
		env := "VIETSCAN_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if VIETSCAN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("VIETSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.OCR = OCRConfig{
		APIKey:            v.GetString("ocr.api_key"),
		Endpoint:          v.GetString("ocr.endpoint"),
		Language:          v.GetString("ocr.language"),
		Engine:            v.GetInt("ocr.engine"),
		DetectOrientation: v.GetBool("ocr.detect_orientation"),
		TimeoutSecs:       v.GetInt("ocr.timeout_secs"),
	}
	cfg.Completion = CompletionConfig{
		Provider:    v.GetString("completion.provider"),
		APIKey:      v.GetString("completion.api_key"),
		Model:       v.GetString("completion.model"),
		MaxTokens:   v.GetInt("completion.max_tokens"),
		Temperature: v.GetFloat64("completion.temperature"),
		TimeoutSecs: v.GetInt("completion.timeout_secs"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeBytes: v.GetInt64("upload.max_file_size_bytes"),
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

	return cfg, nil
}
