package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/workhive/workhive-backend/internal/realtime"
	"go.uber.org/zap"
)

// WsHandler serves the per-user job-update channel. Frames flow one way:
// the server pushes, client frames are read and discarded.
type WsHandler struct {
	layer  *realtime.Layer
	logger *zap.Logger
}

func NewWsHandler(layer *realtime.Layer, logger *zap.Logger) *WsHandler {
	return &WsHandler{layer: layer, logger: logger}
}

func (h *WsHandler) RegisterRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/job-updates/:userID", websocket.New(h.JobUpdates))
}

func (h *WsHandler) JobUpdates(conn *websocket.Conn) {
	userID := conn.Params("userID")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := h.layer.Subscribe(ctx, userID)
	defer sub.Close()

	h.logger.Debug("websocket connected", zap.String("user_id", userID))

	go func() {
		for msg := range sub.Channel() {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				h.logger.Debug("websocket write failed", zap.String("user_id", userID), zap.Error(err))
				cancel()
				conn.Close()
				return
			}
		}
	}()

	// Block until the client goes away; incoming frames carry no meaning
	// yet.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.logger.Debug("websocket disconnected", zap.String("user_id", userID))
			return
		}
	}
}
