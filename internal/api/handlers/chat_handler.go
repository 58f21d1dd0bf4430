package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentscout/hiring-assistant/internal/services"
	"github.com/talentscout/hiring-assistant/internal/utils"
)

type ChatHandler struct {
	svc services.SessionService
}

func NewChatHandler(svc services.SessionService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	Stage     string `json:"stage"`
	Greeting  string `json:"greeting"`
}

func (h *ChatHandler) Start(c *gin.Context) {
	sess, err := h.svc.Start(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	greeting := ""
	if len(sess.Messages) > 0 {
		greeting = sess.Messages[0].Content
	}

	c.JSON(http.StatusOK, StartSessionResponse{
		SessionID: sess.SessionID,
		Stage:     string(sess.Stage),
		Greeting:  greeting,
	})
}

// Message deliberately has no required binding: an empty message is a valid
// turn, the validators reject it where that matters.
type PostMessageRequest struct {
	Message string `json:"message"`
}

type PostMessageResponse struct {
	SessionID string `json:"session_id"`
	Stage     string `json:"stage"`
	Reply     string `json:"reply"`
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.PostMessage", "invalid request body", err))
		return
	}

	sess, reply, err := h.svc.HandleMessage(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PostMessageResponse{
		SessionID: sess.SessionID,
		Stage:     string(sess.Stage),
		Reply:     reply,
	})
}

func (h *ChatHandler) Get(c *gin.Context) {
	sess, err := h.svc.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *ChatHandler) Transcript(c *gin.Context) {
	sessionID := c.Param("session_id")
	rows, err := h.svc.Transcript(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"messages":   rows,
	})
}
