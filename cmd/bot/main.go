// Package main is the bot entry point.
// Loads configuration, initializes the application and runs it.
// Supports graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"mutabaah.id/challenge-bot/internal/app"
	"mutabaah.id/challenge-bot/internal/config"
)

func main() {
	setupLogging()

	log.Info("=== Bot Mutaba'ah dimulai ===")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Gagal memuat konfigurasi")
	}

	level, err := log.ParseLevel(cfg.AppLogLevel)
	if err == nil {
		log.SetLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Gagal menginisialisasi aplikasi")
	}
	defer application.DB.Close()

	application.Scheduler.Start(ctx)
	defer application.Scheduler.Stop()

	// SIGINT from the terminal, SIGTERM from docker stop.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go application.Bot.Start(ctx)

	log.Info("=== Bot siap melayani ===")

	sig := <-quit
	log.Infof("Sinyal %s diterima, berhenti...", sig)

	cancel()

	log.Info("=== Bot berhenti ===")
}

// setupLogging sets the log format before the config is available.
func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}
