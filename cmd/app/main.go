package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"rental/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := newWebServer(app)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Web server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to shut down web server: %v", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env file is fine; defaults below cover local runs.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		SedanMileages: envIntList("FLEET_SEDAN_MILEAGES", []int{12000, 30500, 8200}),
		SUVMileages:   envIntList("FLEET_SUV_MILEAGES", []int{45000, 21000}),
		VanMileages:   envIntList("FLEET_VAN_MILEAGES", []int{60250}),
		SedanRate:     envOrDefault("RATE_SEDAN", "49.99"),
		SUVRate:       envOrDefault("RATE_SUV", "79.99"),
		VanRate:       envOrDefault("RATE_VAN", "99.99"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntList(key string, fallback []int) []int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			log.Fatalf("Invalid value %q in %s", part, key)
		}
		values = append(values, value)
	}
	return values
}

func newWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)
	return e
}
