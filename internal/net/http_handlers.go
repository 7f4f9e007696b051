// Package net mounts the HTTP surface: the websocket endpoint plus the
// health and diagnostics routes.
package net

import (
	"encoding/json"
	nethttp "net/http"
	"time"

	"go.uber.org/zap"

	server "seek-and-strike/server"
	"seek-and-strike/server/internal/net/ws"
)

// HTTPHandlerConfig carries the HTTP-surface dependencies.
type HTTPHandlerConfig struct {
	Logger *zap.SugaredLogger
}

// NewHTTPHandler wires the routes for the given hub.
func NewHTTPHandler(hub *server.Hub, cfg HTTPHandlerConfig) nethttp.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	wsHandler := ws.NewHandler(hub, logger)

	mux := nethttp.NewServeMux()

	mux.HandleFunc("/ws", wsHandler.Handle)

	mux.HandleFunc("/health", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/diagnostics", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		snapshot := hub.CurrentSnapshot()
		payload := struct {
			Status      string                   `json:"status"`
			ServerTime  int64                    `json:"serverTime"`
			PlayerCount int                      `json:"playerCount"`
			Players     []server.Player          `json:"players"`
			AIPositionX float64                  `json:"aiPositionX"`
			AIPositionY float64                  `json:"aiPositionY"`
			Telemetry   server.TelemetrySnapshot `json:"telemetry"`
		}{
			Status:      "ok",
			ServerTime:  time.Now().UnixMilli(),
			PlayerCount: len(snapshot.Players),
			Players:     snapshot.Players,
			AIPositionX: snapshot.AIPosition.X,
			AIPositionY: snapshot.AIPosition.Y,
			Telemetry:   hub.TelemetrySnapshot(),
		}

		data, err := json.Marshal(payload)
		if err != nil {
			nethttp.Error(w, "failed to encode", nethttp.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	return mux
}
