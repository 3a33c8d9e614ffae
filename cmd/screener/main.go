package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockScreener/internal/collector"
	"StockScreener/internal/config"
	"StockScreener/internal/notifier"
	"StockScreener/internal/recorder"
	"StockScreener/internal/scheduler"
	"StockScreener/internal/screener"
	"StockScreener/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScreener starting...")

	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())
	if cfg.DataSource.PacingMS > 0 {
		fetcher = collector.NewThrottledFetcher(fetcher, time.Duration(cfg.DataSource.PacingMS)*time.Millisecond)
	}

	// Symbol universe
	universe := collector.DefaultUniverse()
	if cfg.Screen.UseSampleList {
		universe = collector.SampleUniverse()
	}
	if cfg.Screen.MaxSymbols > 0 && len(universe) > cfg.Screen.MaxSymbols {
		log.Printf("[WARN] test mode: scanning only the first %d symbols", cfg.Screen.MaxSymbols)
		universe = universe[:cfg.Screen.MaxSymbols]
	}

	// Init runner
	params := strategy.Params{
		MinTradedValue:  cfg.Screen.MinTradedValue,
		ShortWindow:     cfg.Screen.ShortWindow,
		MidWindow:       cfg.Screen.MidWindow,
		LongWindow:      cfg.Screen.LongWindow,
		TrendLookback:   cfg.Screen.TrendLookback,
		LiquidityWindow: cfg.Screen.LiquidityWindow,
	}
	runner := screener.NewRunner(fetcher, params, cfg.Screen.Workers, cfg.DataSource.HistoryDays)

	// Init webhook notifier
	wn := notifier.NewWebhookNotifier(cfg.Notify.Service, cfg.WebhookURL(), cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, runner, universe, wn, rec)
	if err := sched.RegisterAll(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing screening now")
		go sched.RunNow()
	}

	log.Println("[INFO] StockScreener is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockScreener stopped")
}
