package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentscout/hiring-assistant/internal/conversation"
	"github.com/talentscout/hiring-assistant/internal/models"
	"github.com/talentscout/hiring-assistant/internal/utils"
)

type memSessionStore struct {
	m     map[string]*models.Session
	saves int
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{m: map[string]*models.Session{}}
}

func (s *memSessionStore) Load(ctx context.Context, sessionID string) (*models.Session, bool, error) {
	sess, ok := s.m[sessionID]
	return sess, ok, nil
}

func (s *memSessionStore) Save(ctx context.Context, sess *models.Session, ttl time.Duration) error {
	s.saves++
	s.m[sess.SessionID] = sess
	return nil
}

func (s *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.m, sessionID)
	return nil
}

type memTranscripts struct {
	entries []models.TranscriptEntry
}

func (t *memTranscripts) Append(ctx context.Context, entries []models.TranscriptEntry) error {
	t.entries = append(t.entries, entries...)
	return nil
}

func (t *memTranscripts) ListBySession(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error) {
	var out []models.TranscriptEntry
	for _, e := range t.entries {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestService() (SessionService, *memSessionStore, *memTranscripts) {
	l := logrus.New()
	l.SetOutput(io.Discard)

	engine := conversation.NewEngine(conversation.Settings{
		AppName:           "TalentScout Hiring Assistant",
		PrivacyDisclaimer: "Privacy note.",
		FallbackMessage:   "The conversation has ended.",
		EndingKeywords:    []string{"bye"},
	}, nil, nil, l)

	store := newMemSessionStore()
	transcripts := &memTranscripts{}
	return NewSessionService(engine, store, transcripts, time.Hour, l), store, transcripts
}

func TestStartEmitsGreeting(t *testing.T) {
	svc, store, transcripts := newTestService()

	sess, err := svc.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StageGreeting, sess.Stage)
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, models.RoleAssistant, sess.Messages[0].Role)
	assert.NotEmpty(t, sess.Messages[0].Content)

	// persisted and archived
	assert.Equal(t, 1, store.saves)
	require.Len(t, transcripts.entries, 1)
	assert.Equal(t, sess.SessionID, transcripts.entries[0].SessionID)
}

func TestHandleMessageAdvancesAndPersists(t *testing.T) {
	svc, store, _ := newTestService()

	sess, err := svc.Start(context.Background())
	require.NoError(t, err)

	updated, reply, err := svc.HandleMessage(context.Background(), sess.SessionID, "Hello!")
	require.NoError(t, err)
	assert.Equal(t, models.StageCollectName, updated.Stage)
	assert.NotEmpty(t, reply)
	assert.Len(t, updated.Messages, 3) // greeting + human + assistant

	// the saved copy is the updated one
	saved := store.m[sess.SessionID]
	assert.Equal(t, models.StageCollectName, saved.Stage)

	// archive got both turn messages, sequenced after the greeting
	rows, err := svc.Transcript(context.Background(), sess.SessionID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 1, rows[1].Seq)
	assert.Equal(t, models.RoleHuman, rows[1].Role)
	assert.Equal(t, "Hello!", rows[1].Content)
	assert.Equal(t, models.RoleAssistant, rows[2].Role)
}

func TestHandleMessageUnknownSession(t *testing.T) {
	svc, _, _ := newTestService()

	_, _, err := svc.HandleMessage(context.Background(), "no-such-session", "hi")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestGetValidation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Get(context.Background(), "")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestTranscriptWithoutArchive(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	engine := conversation.NewEngine(conversation.Settings{
		AppName:         "TalentScout Hiring Assistant",
		FallbackMessage: "ended",
	}, nil, nil, l)
	svc := NewSessionService(engine, newMemSessionStore(), nil, time.Hour, l)

	_, err := svc.Transcript(context.Background(), "some-session")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
}
