package sync

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const writeWait = 10 * time.Second

// Handler upgrades websocket connections and streams hub events to them.
type Handler struct {
	hub    *Hub
	logger *zap.SugaredLogger
}

// NewHandler creates a new websocket handler instance.
func NewHandler(hub *Hub, logger *zap.SugaredLogger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

// RegisterRoutes registers the websocket endpoint.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws", h.Serve)
}

// Serve handles GET /ws?team=<slug>. The connection receives every event
// published for that team until either side closes.
func (h *Handler) Serve(c *gin.Context) {
	teamSlug := c.Query("team")
	if teamSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":    "INVALID_REQUEST",
			"message": "team parameter is required",
		}})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "team", teamSlug, "error", err)
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sub := h.hub.subscribe(teamSlug)
	defer h.hub.unsubscribe(sub)

	h.logger.Debugw("subscriber connected", "team", teamSlug)

	// Inbound messages are not part of the protocol; the read loop only
	// notices the peer going away.
	go func() {
		defer cancel()
		for {
			if _, _, readErr := conn.Read(ctx); readErr != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case event, ok := <-sub.send:
			if !ok {
				conn.Close(websocket.StatusPolicyViolation, "too slow")
				return
			}

			writeCtx, writeCancel := context.WithTimeout(ctx, writeWait)
			err := wsjson.Write(writeCtx, conn, event)
			writeCancel()
			if err != nil {
				h.logger.Debugw("subscriber write failed", "team", teamSlug, "error", err)
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
		}
	}
}
