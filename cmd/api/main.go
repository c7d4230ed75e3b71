package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rental-availability/config"
	_ "rental-availability/docs" // Swagger docs
	availUC "rental-availability/internal/availability/usecase"
	"rental-availability/internal/availability/repository/gcal"
	"rental-availability/internal/httpserver"
	"rental-availability/internal/interpret"
	"rental-availability/internal/pricing"
	"rental-availability/pkg/datemath"
	"rental-availability/pkg/gcalendar"
	"rental-availability/pkg/log"
)

// @title       Rental Availability API
// @description Availability answers for a single holiday property: free-text date queries resolved against the booking calendar and the weekly price list.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Rental Availability...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Calendar: %s", cfg.GoogleCalendar.CalendarID)

	// 3. Date parser
	timezone := cfg.Resolver.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 4. Price table (fail closed: a broken price file means no bookable weeks,
	// not a crashed service)
	prices, err := pricing.Load(cfg.Pricing.File)
	if err != nil {
		logger.Warnf(ctx, "Price table %s unavailable, all weeks unpriced: %v", cfg.Pricing.File, err)
		prices = pricing.Empty()
	} else {
		logger.Infof(ctx, "Price table loaded: %d bands", prices.Len())
	}

	// 5. Google Calendar client
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Google Calendar unavailable: %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}
	logger.Info(ctx, "Google Calendar initialized")

	calendarRepo := gcal.New(logger, calendarClient, gcal.Config{
		CalendarID:   cfg.GoogleCalendar.CalendarID,
		CacheTTL:     cfg.GoogleCalendar.CacheTTL,
		FetchTimeout: cfg.GoogleCalendar.FetchTimeout,
	})

	// 6. Availability UseCase
	interpreter := interpret.New(dateParser)
	uc := availUC.New(logger, interpreter, calendarRepo, prices, cfg.Resolver.LookaheadWeeks)

	// 7. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:         logger,
		Cfg:            cfg,
		AvailabilityUC: uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
