package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"StockScreener/internal/calculator"
	"StockScreener/internal/collector"
	"StockScreener/internal/config"
	"StockScreener/internal/notifier"
	"StockScreener/internal/recorder"
)

// backtest evaluates the historical win rate of past signal dates for one
// symbol and records the outcome.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		code    = flag.String("symbol", "", "securities code to backtest")
		dates   = flag.String("dates", "", "comma-separated signal dates (YYYY-MM-DD)")
		forward = flag.Int("forward", 0, "forward horizon in trading days (0 = config default)")
	)
	flag.Parse()

	if *code == "" || *dates == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	forwardDays := cfg.Backtest.ForwardDays
	if *forward > 0 {
		forwardDays = *forward
	}

	signalDates, err := parseDates(*dates)
	if err != nil {
		log.Fatalf("[FATAL] parse dates: %v", err)
	}

	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}

	series, err := fetcher.FetchDailySeries(*code, cfg.DataSource.HistoryDays)
	if err != nil {
		log.Fatalf("[FATAL] fetch %s: %v", *code, err)
	}

	outcome, err := calculator.WinRate(series, signalDates, forwardDays)
	if err != nil {
		log.Fatalf("[FATAL] win rate: %v", err)
	}

	fmt.Println(notifier.FormatBacktest(*code, outcome, forwardDays))

	if cfg.Database.SQLitePath != "" {
		rec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder: %v", err)
			return
		}
		defer rec.Close()
		if err := rec.RecordBacktest(&recorder.BacktestRecord{
			Code:        *code,
			ForwardDays: forwardDays,
			Evaluated:   outcome.Evaluated,
			WinRate:     outcome.WinRate,
		}); err != nil {
			log.Printf("[ERROR] record backtest: %v", err)
		}
	}
}

func parseDates(s string) ([]time.Time, error) {
	parts := strings.Split(s, ",")
	dates := make([]time.Time, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.Parse("2006-01-02", p)
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", p, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
