// Command push analyzes a list of symbols and delivers the snapshot
// summaries to WeChat via ServerChan. It runs once by default, or on a
// schedule when -cron is given.
//
// Usage:
//
//	push [-period 1y] [-cron "0 9 * * *"] SYMBOL...
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"stock_analyzer/internal/app/di"
	"stock_analyzer/internal/feature/marketdata/usecase"
	"stock_analyzer/internal/notify"
	"stock_analyzer/internal/shared/ratelimiter"
)

const perSymbolTimeout = 2 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found. Using system environment variables.")
	}

	defaultPeriod := os.Getenv("PERIOD")
	if defaultPeriod == "" {
		defaultPeriod = usecase.DefaultPeriod
	}
	period := flag.String("period", defaultPeriod, "analysis period (1mo, 3mo, 6mo, 1y, 2y, 5y, max)")
	cronSpec := flag.String("cron", "", "cron schedule; when set, keep running and push on schedule")
	flag.Parse()

	symbols := flag.Args()
	if len(symbols) == 0 {
		log.Fatal("[ERROR] No symbols given. Usage: push [-period 1y] [-cron spec] SYMBOL...")
	}

	uc := di.NewAcquireUsecase()
	sender := di.NewServerChanSender()
	// Providers throttle aggressive clients, so pace the batch.
	limiter := ratelimiter.NewRateLimiter(5, time.Minute)

	run := func() {
		pushed := 0
		for _, symbol := range symbols {
			limiter.WaitIfNeeded()
			if err := pushOne(uc, sender, symbol, *period); err != nil {
				log.Printf("[ERROR] %s: %v", symbol, err)
				continue
			}
			pushed++
		}
		log.Printf("[INFO] Pushed %d/%d snapshots.", pushed, len(symbols))
	}

	if *cronSpec == "" {
		run()
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(*cronSpec, run); err != nil {
		log.Fatalf("[ERROR] Invalid cron spec %q: %v", *cronSpec, err)
	}
	log.Printf("[INFO] Scheduled push %q for %d symbols.", *cronSpec, len(symbols))
	c.Run()
}

func pushOne(uc *usecase.AcquireUsecase, sender *notify.ServerChanSender, symbol, period string) error {
	ctx, cancel := context.WithTimeout(context.Background(), perSymbolTimeout)
	defer cancel()

	snap, err := uc.GetStockData(ctx, symbol, period)
	if err != nil {
		return err
	}
	title, content := notify.FormatSnapshot(snap, period, time.Now())
	return sender.Send(ctx, title, content)
}
