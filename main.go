package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-ask/bootstrap"
	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/handlers"
	"github.com/danielhkuo/quickly-ask/router"
)

func main() {
	var err error

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogFormat)

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		slog.Error("invalid database type", "error", err)
		os.Exit(1)
	}

	// Must be checked before Open creates the SQLite file
	fresh := db.IsFresh(dialect, cfg.DatabaseURL)

	dbConn, err := db.Open(dialect, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	ctx := context.Background()

	switch cfg.Command {
	case cliparse.CommandInitDB:
		if _, err := bootstrap.EnsureInitialized(ctx, dbConn, dialect); err != nil {
			slog.Error("initialization failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database initialized")
		return

	case cliparse.CommandResetAdmin:
		if err := bootstrap.ResetAdminCredential(ctx, dbConn, dialect); err != nil {
			slog.Error("admin reset failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if fresh {
		if _, err := bootstrap.EnsureInitialized(ctx, dbConn, dialect); err != nil {
			slog.Error("initialization failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database created", "path", cfg.DatabaseURL)
	}

	if cfg.UsingDefaultSecret() {
		slog.Warn("SECRET_KEY not set; sessions are signed with the insecure default key")
	}

	env, err := handlers.NewEnv(dbConn, dialect, cfg)
	if err != nil {
		slog.Error("failed to set up handlers", "error", err)
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:      router.NewRouter(env),
		Addr:         ":" + strconv.Itoa(cfg.Port),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func setupLogger(format string) {
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		h = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(h))
}
