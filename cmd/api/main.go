package main

import (
	"log"
	"time"

	"stagifyapi/controllers"
	"stagifyapi/services"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         services.GetEnv("SENTRY_DSN", ""),
		Environment: services.GetEnv("ENV", "local"),
		Release:     "stagifyapi@1.0.0",
		Debug:       false,
		// We recommend adjusting this value in production.
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	apiKey := services.ResolveAPIKey()
	if apiKey == "" {
		// Not fatal: /api/health reports aiConfigured=false and staging
		// requests fail fast without hitting the network.
		log.Println("WARNING: google ai key is not set, staging requests will be rejected")
	}

	clientCache, err := services.NewClientCacheService()
	if err != nil {
		log.Fatal("Failed to initialize google ai client cache: ", err)
	}
	processor := services.NewGoogleStagingService(apiKey, clientCache)
	usageLog := services.NewUsageLogService()
	log.Println("Usage logs directory:", usageLog.Dir())

	e := controllers.SetupServer(processor, usageLog)
	e.Debug = services.DebugEnabled()

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	e.Logger.Fatal(e.Start(":" + services.GetEnv("PORT", "8080")))
}
