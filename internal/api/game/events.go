package game

import (
	"net/http"
	"time"

	"snakes_backend/internal/api/apierr"
	"snakes_backend/internal/converter"
	"snakes_backend/internal/model"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	// writeWait Время на запись одного кадра
	writeWait = 10 * time.Second
	// pongWait Время ожидания pong от клиента
	pongWait = 60 * time.Second
	// pingPeriod Период ping, меньше pongWait
	pingPeriod = (pongWait * 9) / 10
	// Клиент ничего не шлет, кроме управляющих кадров
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

// Events - поток событий движка сессии через WebSocket.
// Поток закрывается при закрытии сессии или отключении клиента
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	events, unsubscribe, err := h.serv.Subscribe(sessionID)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		unsubscribe()
		h.log.Warn("websocket upgrade failed", zap.String("session_id", sessionID), zap.Error(err))
		return
	}

	log := h.log.With(zap.String("session_id", sessionID))
	log.Debug("event stream opened")

	done := make(chan struct{})
	go readPump(conn, done, log)
	writePump(conn, events, done, log)

	unsubscribe()
	log.Debug("event stream closed")
}

// readPump - читает управляющие кадры до отключения клиента
func readPump(conn *websocket.Conn, done chan<- struct{}, log *zap.Logger) {
	defer close(done)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("websocket read failed", zap.Error(err))
			}
			return
		}
	}
}

// writePump - пишет события клиенту и шлет ping
func writePump(conn *websocket.Conn, events <-chan model.Event, done <-chan struct{}, log *zap.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case ev, ok := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Сессия закрыта
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
				return
			}

			payload, err := jsoniter.Marshal(converter.ToEventResponse(ev))
			if err != nil {
				log.Error("marshal event", zap.Error(err))
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
