package models

import (
	"time"

	"github.com/google/uuid"
)

// Stage is the current step of the candidate-intake sequence. Transitions move
// strictly forward; only StageGenerateQuestions loops on itself.
type Stage string

const (
	StageGreeting          Stage = "greeting"
	StageCollectName       Stage = "collect_name"
	StageCollectEmail      Stage = "collect_email"
	StageCollectPhone      Stage = "collect_phone"
	StageCollectExperience Stage = "collect_experience"
	StageCollectPosition   Stage = "collect_position"
	StageCollectLocation   Stage = "collect_location"
	StageCollectTechStack  Stage = "collect_tech_stack"
	StageGenerateQuestions Stage = "generate_questions"
	StageEndConversation   Stage = "end_conversation"
)

type Role string

const (
	RoleAssistant Role = "assistant"
	RoleHuman     Role = "human"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session holds all conversational state for one candidate chat. It is created
// per candidate, carried explicitly through every turn, and never shared
// across sessions.
type Session struct {
	SessionID string          `json:"session_id"` // uuid v4
	Stage     Stage           `json:"stage"`
	Candidate CandidateRecord `json:"candidate"`
	TechStack []string        `json:"tech_stack,omitempty"`
	Messages  []Message       `json:"messages"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewSession() *Session {
	return &Session{
		SessionID: uuid.NewString(),
		Stage:     StageGreeting,
		CreatedAt: time.Now().UTC(),
	}
}

// Append records one chat turn. History is append-only.
func (s *Session) Append(role Role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}

// Recent returns the last n messages, oldest first.
func (s *Session) Recent(n int) []Message {
	if n <= 0 || len(s.Messages) == 0 {
		return nil
	}
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}
