package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Life assistant specifics
	Storage        StorageConfig
	Telegram       TelegramConfig
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig

	// Notification webhook
	Notify NotifyConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig locates the SQLite database file.
type StorageConfig struct {
	Path string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// NotifyConfig configures the payment-notification webhook.
type NotifyConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Path = viper.GetString("storage.path")
	if storagePath := viper.GetString("storage_path"); storagePath != "" {
		cfg.Storage.Path = storagePath
	}

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key not configured - set gemini.api_key in config.yaml or GEMINI_API_KEY")
	}

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Notification webhook
	cfg.Notify.Enabled = viper.GetBool("notify.enabled")
	cfg.Notify.Secret = viper.GetString("notify.secret")
	if notifySecret := viper.GetString("notify_secret"); notifySecret != "" {
		cfg.Notify.Secret = notifySecret
	}
	cfg.Notify.RateLimitPerMin = viper.GetInt("notify.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("notify.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Notify.AllowedIPs = ips

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "Asia/Shanghai")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.path", "./data/life-assistant.db")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("notify.enabled", true)
	viper.SetDefault("notify.rate_limit_per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if v := viper.GetString(envVar); v != "" {
			return v
		}
		return os.Getenv(envVar)
	}

	return value
}
