package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/talentscout/hiring-assistant/internal/services"
	"github.com/talentscout/hiring-assistant/internal/utils"
)

// WSHandler runs the chat over a websocket: one candidate message in, one
// assistant reply out, strictly in turn order.
type WSHandler struct {
	svc      services.SessionService
	upgrader websocket.Upgrader
}

func NewWSHandler(svc services.SessionService) *WSHandler {
	return &WSHandler{
		svc: svc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin in prod
		},
	}
}

type wsClientMsg struct {
	Type    string `json:"type"` // message
	Content string `json:"content"`
}

type wsServerMsg struct {
	Type    string `json:"type"` // ready|reply|error
	Stage   string `json:"stage,omitempty"`
	Content string `json:"content,omitempty"`
	Code    string `json:"code,omitempty"`
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.c.WriteMessage(websocket.TextMessage, b)
}

func (h *WSHandler) SessionWS(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "WSHandler.SessionWS", "missing session_id", nil))
		return
	}

	sess, err := h.svc.Get(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrade already wrote response in most cases
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}
	_ = wc.writeJSON(wsServerMsg{Type: "ready", Stage: string(sess.Stage)})

	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, data, rerr := conn.ReadMessage()
		if rerr != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var msg wsClientMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = wc.writeJSON(wsServerMsg{Type: "error", Code: string(utils.CodeInvalidArgument), Content: "invalid json"})
			continue
		}

		switch msg.Type {
		case "message":
			updated, reply, err := h.svc.HandleMessage(c.Request.Context(), sessionID, msg.Content)
			if err != nil {
				_ = wc.writeJSON(wsServerMsg{Type: "error", Code: string(utils.CodeInternal), Content: "failed to handle message"})
				continue
			}
			if werr := wc.writeJSON(wsServerMsg{Type: "reply", Stage: string(updated.Stage), Content: reply}); werr != nil {
				return
			}

		default:
			_ = wc.writeJSON(wsServerMsg{Type: "error", Code: string(utils.CodeInvalidArgument), Content: "unknown message type"})
		}
	}
}
