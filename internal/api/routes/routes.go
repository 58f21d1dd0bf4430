package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/talentscout/hiring-assistant/internal/api/handlers"
)

type Deps struct {
	Chat *handlers.ChatHandler
	WS   *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/session/start", d.Chat.Start)
	r.GET("/session/:session_id", d.Chat.Get)
	r.POST("/session/:session_id/message", d.Chat.PostMessage)
	r.GET("/session/:session_id/transcript", d.Chat.Transcript)

	// WebSocket
	r.GET("/ws/session/:session_id", d.WS.SessionWS)
}
