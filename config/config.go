package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	placeholderToken  = "YOUR_BOT_TOKEN_HERE"
	placeholderChatID = "YOUR_CHAT_ID_HERE"

	// DefaultSourceURL is the gold price page scraped when no override is set.
	DefaultSourceURL = "https://www.24h.com.vn/gia-vang-hom-nay-c425.html"
)

// Config is the process-wide configuration, read once at startup and passed
// by injection into each component. It is never mutated afterwards.
type Config struct {
	Port           int
	Debug          bool
	AllowedOrigins []string

	Telegram      TelegramConfig
	Source        SourceConfig
	Notifications NotificationsConfig
	Commands      CommandsConfig
	Schedule      ScheduleConfig
}

// TelegramConfig holds the bot credentials and default destination.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// SourceConfig holds the scrape target.
type SourceConfig struct {
	GoldPriceURL string
}

// NotificationsConfig mirrors the notification toggles. They are advisory:
// nothing in the pipeline gates on them yet.
type NotificationsConfig struct {
	Enabled                    bool
	PriceAlerts                bool
	DailySummary               bool
	SignificantChangeThreshold float64
}

// CommandsConfig holds the bot command reply templates.
type CommandsConfig struct {
	Start string
	Help  string
	Price string
}

// ScheduleConfig holds the cron specs and the tick overlap policy.
type ScheduleConfig struct {
	MinuteSpec   string
	DailySpec    string
	AllowOverlap bool
}

// Load reads configuration from environment variables with hardcoded
// fallbacks and materializes it into an immutable Config.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.BindEnv("port", "PORT")
	v.BindEnv("debug", "DEBUG")
	v.BindEnv("allowed_origins", "ALLOWED_ORIGINS")
	v.BindEnv("telegram_bot_token", "TELEGRAM_BOT_TOKEN")
	v.BindEnv("telegram_chat_id", "TELEGRAM_CHAT_ID")
	v.BindEnv("source_gold_price_url", "SOURCE_GOLD_PRICE_URL")
	v.BindEnv("notifications_enabled", "NOTIFICATIONS_ENABLED")
	v.BindEnv("price_alerts_enabled", "PRICE_ALERTS_ENABLED")
	v.BindEnv("daily_summary_enabled", "DAILY_SUMMARY_ENABLED")
	v.BindEnv("significant_change_threshold", "SIGNIFICANT_CHANGE_THRESHOLD")
	v.BindEnv("cron_minute_spec", "CRON_MINUTE_SPEC")
	v.BindEnv("cron_daily_spec", "CRON_DAILY_SPEC")
	v.BindEnv("cron_allow_overlap", "CRON_ALLOW_OVERLAP")

	v.SetDefault("port", 3000)
	v.SetDefault("debug", false)
	v.SetDefault("allowed_origins", "")
	v.SetDefault("telegram_bot_token", placeholderToken)
	v.SetDefault("telegram_chat_id", placeholderChatID)
	v.SetDefault("source_gold_price_url", DefaultSourceURL)
	v.SetDefault("notifications_enabled", true)
	v.SetDefault("price_alerts_enabled", true)
	v.SetDefault("daily_summary_enabled", true)
	v.SetDefault("significant_change_threshold", 2.0)
	v.SetDefault("cron_minute_spec", "* * * * *")
	v.SetDefault("cron_daily_spec", "0 6 * * *")
	v.SetDefault("cron_allow_overlap", true)

	return &Config{
		Port:           v.GetInt("port"),
		Debug:          v.GetBool("debug"),
		AllowedOrigins: splitOrigins(v.GetString("allowed_origins")),
		Telegram: TelegramConfig{
			BotToken: v.GetString("telegram_bot_token"),
			ChatID:   v.GetString("telegram_chat_id"),
		},
		Source: SourceConfig{
			GoldPriceURL: v.GetString("source_gold_price_url"),
		},
		Notifications: NotificationsConfig{
			Enabled:                    v.GetBool("notifications_enabled"),
			PriceAlerts:                v.GetBool("price_alerts_enabled"),
			DailySummary:               v.GetBool("daily_summary_enabled"),
			SignificantChangeThreshold: v.GetFloat64("significant_change_threshold"),
		},
		Commands: CommandsConfig{
			Start: "Welcome to Gold Price Tracker bot!",
			Help:  "Available commands: /start, /help, /price",
			Price: "📊 Fetching the latest gold prices...",
		},
		Schedule: ScheduleConfig{
			MinuteSpec:   v.GetString("cron_minute_spec"),
			DailySpec:    v.GetString("cron_daily_spec"),
			AllowOverlap: v.GetBool("cron_allow_overlap"),
		},
	}
}

// TelegramConfigured reports whether a real bot token was provided.
func (c *Config) TelegramConfigured() bool {
	return c.Telegram.BotToken != "" && c.Telegram.BotToken != placeholderToken
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
