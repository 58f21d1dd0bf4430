package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/talentscout/hiring-assistant/config"
	"github.com/talentscout/hiring-assistant/internal/api/handlers"
	"github.com/talentscout/hiring-assistant/internal/api/middleware"
	"github.com/talentscout/hiring-assistant/internal/api/routes"
	"github.com/talentscout/hiring-assistant/internal/cache"
	"github.com/talentscout/hiring-assistant/internal/conversation"
	"github.com/talentscout/hiring-assistant/internal/logger"
	"github.com/talentscout/hiring-assistant/internal/providers/llm"
	mongorepo "github.com/talentscout/hiring-assistant/internal/repositories/mongo"
	pgrepo "github.com/talentscout/hiring-assistant/internal/repositories/postgres"
	"github.com/talentscout/hiring-assistant/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	appCfg := config.LoadApp()
	ctx := context.Background()

	if err := config.InitPostgres(); err != nil {
		log.WithError(err).Fatal("PostgreSQL init error")
	}
	log.Info("PostgreSQL connected")

	if err := config.InitMongo(); err != nil {
		log.WithError(err).Fatal("MongoDB init error")
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.WithError(err).Fatal("MongoDB index error")
	}
	log.Info("MongoDB connected")

	if err := config.InitRedis(); err != nil {
		log.WithError(err).Fatal("Redis init error")
	}
	log.Info("Redis connected")

	// The generation service is optional: without it every delegated reply
	// becomes the configured fallback message.
	var provider llm.Provider
	if appCfg.VertexProjectID != "" {
		vg, err := llm.NewVertexGemini(ctx, appCfg.VertexProjectID, appCfg.VertexLocation, appCfg.VertexModel)
		if err != nil {
			log.WithError(err).Warn("generation service unavailable; follow-up replies will use the fallback message")
		} else {
			provider = llm.NewResilient(vg, log)
			defer provider.Close()
		}
	}

	store := services.NewCandidateStore(pgrepo.NewCandidateRepo(config.PostgresDB))
	engine := conversation.NewEngine(conversation.Settings{
		AppName:           appCfg.AppName,
		PrivacyDisclaimer: appCfg.PrivacyDisclaimer,
		FallbackMessage:   appCfg.FallbackMessage,
		EndingKeywords:    appCfg.EndingKeywords,
		DynamicPrompts:    appCfg.DynamicPrompts,
	}, provider, store, log)

	sessions := cache.NewRedisSessionStore(config.RedisClient)
	transcripts := mongorepo.NewTranscriptRepo(config.MongoDatabase())
	svc := services.NewSessionService(engine, sessions, transcripts, appCfg.SessionTTL, log)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	routes.RegisterRoutes(r, routes.Deps{
		Chat: handlers.NewChatHandler(svc),
		WS:   handlers.NewWSHandler(svc),
	})

	if err := r.Run(":" + appCfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
