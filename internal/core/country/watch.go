// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/taibuivan/countries/internal/platform/constants"
	"github.com/taibuivan/countries/internal/platform/ctxutil"
)

// watchCountries handles GET /countries/watch.
//
// It upgrades to a WebSocket and pushes a [Summary] for the current state and
// every later transition until the client disconnects or the store scope ends.
// Clients send nothing; inbound frames are read only to notice closure.
func (handler *Handler) watchCountries(writer http.ResponseWriter, request *http.Request) {
	logger := ctxutil.GetLogger(request.Context())

	conn, err := handler.upgrader.Upgrade(writer, request, nil)
	if err != nil {
		// Upgrade has already written an HTTP error response.
		logger.Warn("watch_upgrade_failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	updates, unsubscribe := handler.service.Subscribe()
	defer unsubscribe()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(constants.WatchPingInterval)
	defer ticker.Stop()

	logger.Debug("watch_started")

	for {
		select {
		case state, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(constants.WatchWriteTimeout))
			if err := conn.WriteJSON(state.Summary()); err != nil {
				logger.Debug("watch_write_failed", slog.Any("error", err))
				return
			}

		case <-ticker.C:
			deadline := time.Now().Add(constants.WatchWriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}

		case <-handler.service.Done():
			deadline := time.Now().Add(constants.WatchWriteTimeout)
			message := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = conn.WriteControl(websocket.CloseMessage, message, deadline)
			return

		case <-closed:
			logger.Debug("watch_closed_by_client")
			return
		}
	}
}
