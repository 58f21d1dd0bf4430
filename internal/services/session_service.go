package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/talentscout/hiring-assistant/internal/cache"
	"github.com/talentscout/hiring-assistant/internal/conversation"
	"github.com/talentscout/hiring-assistant/internal/models"
	mongorepo "github.com/talentscout/hiring-assistant/internal/repositories/mongo"
	"github.com/talentscout/hiring-assistant/internal/utils"
)

type SessionService interface {
	// Start creates a session with the greeting already appended.
	Start(ctx context.Context) (*models.Session, error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	// HandleMessage runs one synchronous turn and returns the updated
	// session plus the assistant reply.
	HandleMessage(ctx context.Context, sessionID, input string) (*models.Session, string, error)
	Transcript(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error)
}

type sessionService struct {
	engine      *conversation.Engine
	sessions    cache.SessionStore
	transcripts mongorepo.TranscriptRepository // optional
	ttl         time.Duration
	log         *logrus.Logger
}

func NewSessionService(engine *conversation.Engine, sessions cache.SessionStore, transcripts mongorepo.TranscriptRepository, ttl time.Duration, log *logrus.Logger) SessionService {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &sessionService{
		engine:      engine,
		sessions:    sessions,
		transcripts: transcripts,
		ttl:         ttl,
		log:         log,
	}
}

func (s *sessionService) Start(ctx context.Context) (*models.Session, error) {
	const op = "SessionService.Start"

	sess := models.NewSession()
	sess.Append(models.RoleAssistant, s.engine.Greeting(ctx))

	if err := s.sessions.Save(ctx, sess, s.ttl); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save session", err)
	}

	s.archive(ctx, sess, 0)
	return sess, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	const op = "SessionService.Get"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}

	sess, hit, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load session", err)
	}
	if !hit {
		return nil, utils.E(utils.CodeNotFound, op, "session not found", nil)
	}
	return sess, nil
}

func (s *sessionService) HandleMessage(ctx context.Context, sessionID, input string) (*models.Session, string, error) {
	const op = "SessionService.HandleMessage"

	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	seqBase := len(sess.Messages)
	reply := s.engine.Respond(ctx, sess, input)

	if err := s.sessions.Save(ctx, sess, s.ttl); err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to save session", err)
	}

	s.archive(ctx, sess, seqBase)
	return sess, reply, nil
}

func (s *sessionService) Transcript(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error) {
	const op = "SessionService.Transcript"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}
	if s.transcripts == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "transcript archive not configured", nil)
	}

	rows, err := s.transcripts.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list transcript", err)
	}
	return rows, nil
}

// archive writes the messages from seqBase on to the transcript collection.
// Best-effort: archive failures are logged, the turn already happened.
func (s *sessionService) archive(ctx context.Context, sess *models.Session, seqBase int) {
	if s.transcripts == nil || seqBase >= len(sess.Messages) {
		return
	}

	now := time.Now().UTC()
	entries := make([]models.TranscriptEntry, 0, len(sess.Messages)-seqBase)
	for i := seqBase; i < len(sess.Messages); i++ {
		entries = append(entries, models.TranscriptEntry{
			SessionID: sess.SessionID,
			Seq:       i,
			Role:      sess.Messages[i].Role,
			Content:   sess.Messages[i].Content,
			Timestamp: now,
		})
	}

	if err := s.transcripts.Append(ctx, entries); err != nil {
		s.log.WithError(err).WithField("session_id", sess.SessionID).Warn("failed to archive transcript entries")
	}
}
