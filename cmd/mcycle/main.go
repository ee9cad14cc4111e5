package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/mcycle/internal/api"
	"github.com/terraincognita07/mcycle/internal/cli"
	"github.com/terraincognita07/mcycle/internal/config"
	"github.com/terraincognita07/mcycle/internal/db"
	"github.com/terraincognita07/mcycle/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "mcycle: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches operator subcommands and otherwise starts the server.
func run(args []string, out io.Writer) error {
	if len(args) == 0 || args[0] == "serve" {
		return serve()
	}

	switch args[0] {
	case "reset-password":
		email, err := commandEmail(args)
		if err != nil {
			return err
		}
		dbPath, databaseURL := config.LoadStorage()
		return cli.RunResetPasswordCommand(databaseURL, dbPath, email, out)
	case "summary":
		email, err := commandEmail(args)
		if err != nil {
			return err
		}
		dbPath, databaseURL := config.LoadStorage()
		return cli.RunSummaryCommand(databaseURL, dbPath, email, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func commandEmail(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: mcycle %s <email>", args[0])
	}
	return args[1], nil
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "usage:")
	fmt.Fprintln(out, "  mcycle [serve]                 start the API server")
	fmt.Fprintln(out, "  mcycle reset-password <email>  set a temporary password")
	fmt.Fprintln(out, "  mcycle summary <email>         print the insights report")
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	time.Local = cfg.Location

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	db.SetQueryLogger(logger)

	database, err := db.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, api.HandlerOptions{
		Logger:      logger,
		Environment: cfg.AppEnv,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	app := api.NewApp(handler, api.AppOptions{
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
	})

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.WithError(err).Error("server shutdown failed")
		}
	}()

	logger.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"storage":  storageLabel(cfg),
		"timezone": cfg.Location.String(),
		"env":      cfg.AppEnv,
	}).Info("mCycle listening")

	if err := app.Listen(":" + cfg.Port); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func storageLabel(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return "postgres"
	}
	return "sqlite:" + cfg.DBPath
}
