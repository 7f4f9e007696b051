package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"seek-and-strike/server/internal/app"
)

func main() {
	var addr string
	var logPath string
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&logPath, "log", "", "log file path (empty logs to stdout)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Config{Addr: addr, LogPath: logPath}); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
