package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Notify struct {
		Service           string `yaml:"service"` // "slack" or "discord"
		SlackWebhookURL   string `yaml:"slack_webhook_url"`
		DiscordWebhookURL string `yaml:"discord_webhook_url"`
	} `yaml:"notify"`
	DataSource struct {
		BaseURL     string `yaml:"base_url"` // self-hosted bar API; empty means Yahoo
		APIKey      string `yaml:"api_key"`
		PacingMS    int    `yaml:"pacing_ms"`
		HistoryDays int    `yaml:"history_days"`
	} `yaml:"data_source"`
	Screen struct {
		MinTradedValue  float64 `yaml:"min_traded_value"`
		ShortWindow     int     `yaml:"short_window"`
		MidWindow       int     `yaml:"mid_window"`
		LongWindow      int     `yaml:"long_window"`
		TrendLookback   int     `yaml:"trend_lookback"`
		LiquidityWindow int     `yaml:"liquidity_window"`
		Workers         int     `yaml:"workers"`
		MaxSymbols      int     `yaml:"max_symbols"` // 0 means the whole universe
		UseSampleList   bool    `yaml:"use_sample_list"`
	} `yaml:"screen"`
	Backtest struct {
		ForwardDays int `yaml:"forward_days"`
	} `yaml:"backtest"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; env and defaults carry
// the run.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("NOTIFICATION_SERVICE"); v != "" {
		cfg.Notify.Service = v
	}
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		cfg.Notify.SlackWebhookURL = v
	}
	if v := os.Getenv("DISCORD_WEBHOOK_URL"); v != "" {
		cfg.Notify.DiscordWebhookURL = v
	}
	if v := os.Getenv("BARS_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("MAX_STOCKS"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			cfg.Screen.MaxSymbols = n
		}
	}
	if v := os.Getenv("MIN_TRADED_VALUE"); v != "" {
		var f float64
		if _, err := fmt.Sscanf(v, "%f", &f); err == nil {
			cfg.Screen.MinTradedValue = f
		}
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Notify.Service == "" {
		cfg.Notify.Service = "slack"
	}
	if cfg.DataSource.PacingMS == 0 {
		cfg.DataSource.PacingMS = 500
	}
	if cfg.DataSource.HistoryDays == 0 {
		cfg.DataSource.HistoryDays = 365
	}
	if cfg.Screen.MinTradedValue == 0 {
		cfg.Screen.MinTradedValue = 1_000_000
	}
	if cfg.Screen.ShortWindow == 0 {
		cfg.Screen.ShortWindow = 50
	}
	if cfg.Screen.MidWindow == 0 {
		cfg.Screen.MidWindow = 100
	}
	if cfg.Screen.LongWindow == 0 {
		cfg.Screen.LongWindow = 200
	}
	if cfg.Screen.TrendLookback == 0 {
		cfg.Screen.TrendLookback = 5
	}
	if cfg.Screen.LiquidityWindow == 0 {
		cfg.Screen.LiquidityWindow = 30
	}
	if cfg.Screen.Workers == 0 {
		cfg.Screen.Workers = 4
	}
	if cfg.Backtest.ForwardDays == 0 {
		cfg.Backtest.ForwardDays = 5
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 30 16 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/screener.db"
	}

	return cfg, nil
}

// WebhookURL returns the webhook for the configured notification service.
func (c *Config) WebhookURL() string {
	if c.Notify.Service == "discord" {
		return c.Notify.DiscordWebhookURL
	}
	return c.Notify.SlackWebhookURL
}

// Validate checks that the configuration can carry a full run.
func (c *Config) Validate() error {
	switch c.Notify.Service {
	case "slack":
		if c.Notify.SlackWebhookURL == "" {
			return fmt.Errorf("notify.slack_webhook_url is required for slack notifications")
		}
	case "discord":
		if c.Notify.DiscordWebhookURL == "" {
			return fmt.Errorf("notify.discord_webhook_url is required for discord notifications")
		}
	default:
		return fmt.Errorf("notify.service must be slack or discord, got %q", c.Notify.Service)
	}
	if c.Screen.ShortWindow >= c.Screen.MidWindow || c.Screen.MidWindow >= c.Screen.LongWindow {
		return fmt.Errorf("screen windows must satisfy short < mid < long, got %d/%d/%d",
			c.Screen.ShortWindow, c.Screen.MidWindow, c.Screen.LongWindow)
	}
	if c.Screen.TrendLookback <= 0 {
		return fmt.Errorf("screen.trend_lookback must be positive")
	}
	if c.Screen.LiquidityWindow <= 0 {
		return fmt.Errorf("screen.liquidity_window must be positive")
	}
	if c.Backtest.ForwardDays <= 0 {
		return fmt.Errorf("backtest.forward_days must be positive")
	}
	if c.DataSource.HistoryDays < c.Screen.LongWindow {
		return fmt.Errorf("data_source.history_days (%d) must cover the long window (%d)",
			c.DataSource.HistoryDays, c.Screen.LongWindow)
	}
	return nil
}
