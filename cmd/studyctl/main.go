package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/khy07181/the-java-test/internal/config"
	"github.com/khy07181/the-java-test/internal/domain/directory"
	"github.com/khy07181/the-java-test/internal/domain/notification"
	"github.com/khy07181/the-java-test/internal/domain/study"
	"github.com/khy07181/the-java-test/internal/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout only carries command output.
	logWriter := io.Writer(os.Stderr)
	var logFile *cappedLogFile
	if cfg.Log.Path != "" {
		logFile, err = openLogFile(cfg.Log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			logWriter = logFile
		}
	}
	logger := newLogger(logWriter, cfg.Log)

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		db.Close()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, newApp(db, logger), os.Args[1:], os.Stdout)
	stop()
	db.Close()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	directory     *directory.Directory
	studies       *study.Service
	notifications *notification.Service
	logger        *slog.Logger
}

func newApp(db *sqlite.DB, logger *slog.Logger) *app {
	memberRepo := sqlite.NewMemberRepository(db)
	studyRepo := sqlite.NewStudyRepository(db)
	notificationRepo := sqlite.NewNotificationRepository(db)

	notificationSvc := notification.NewService(notificationRepo, logger)
	dir := directory.New(memberRepo, notificationSvc, logger)
	studySvc := study.NewService(dir, studyRepo, logger)

	return &app{
		directory:     dir,
		studies:       studySvc,
		notifications: notificationSvc,
		logger:        logger,
	}
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
