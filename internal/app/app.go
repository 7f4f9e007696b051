// Package app wires the process: logger, hub, HTTP surface, lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	server "seek-and-strike/server"
	servernet "seek-and-strike/server/internal/net"
)

// Config carries the process-level settings.
type Config struct {
	Addr    string
	LogPath string
}

const shutdownTimeout = 5 * time.Second

// Run builds the hub and HTTP surface and serves until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	logger, err := newLogger(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to construct logger: %w", err)
	}
	defer logger.Sync()

	hubCfg := server.DefaultHubConfig()
	if raw := os.Getenv("AI_SPEED"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value > 0 {
			hubCfg.AISpeed = value
		} else {
			logger.Warnw("ignoring invalid AI_SPEED", "value", raw, "error", err)
		}
	}
	if raw := os.Getenv("AI_STEP_SECONDS"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value > 0 {
			hubCfg.AIStep = value
		} else {
			logger.Warnw("ignoring invalid AI_STEP_SECONDS", "value", raw, "error", err)
		}
	}

	hub := server.NewHubWithConfig(hubCfg, logger)
	handler := servernet.NewHTTPHandler(hub, servernet.HTTPHandlerConfig{Logger: logger})

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Infow("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// newLogger builds a sugared zap logger. With a log path set it writes to a
// rolling file; otherwise it logs to stdout.
func newLogger(logPath string) (*zap.SugaredLogger, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encCfg)

	var sink zapcore.WriteSyncer
	if logPath != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	} else {
		sink = zapcore.AddSync(os.Stdout)
	}

	core := zapcore.NewCore(encoder, sink, zapcore.InfoLevel)
	return zap.New(core, zap.AddCaller()).Sugar(), nil
}
