// Package conversation implements the candidate-intake state machine. Each
// turn takes the session and one user message, mutates the session, and
// returns the assistant reply. Replies are always natural-language chat text;
// validation failures re-prompt and collaborator failures are absorbed into
// the configured fallback message.
package conversation

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/talentscout/hiring-assistant/internal/models"
	"github.com/talentscout/hiring-assistant/internal/prompts"
	"github.com/talentscout/hiring-assistant/internal/providers/llm"
	"github.com/talentscout/hiring-assistant/internal/questions"
	"github.com/talentscout/hiring-assistant/internal/validation"
)

// Settings are the externally supplied conversation parameters.
type Settings struct {
	AppName           string
	PrivacyDisclaimer string
	FallbackMessage   string
	EndingKeywords    []string
	// DynamicPrompts routes intake-stage replies through the generation
	// service (canned text on any failure). Off by default so the intake
	// flow is deterministic.
	DynamicPrompts bool
}

// CandidateStore is the external storage collaborator. Saving is best-effort:
// a failure is logged but never blocks the stage transition.
type CandidateStore interface {
	Save(ctx context.Context, sessionID string, rec models.CandidateRecord, techStack []string) error
}

type Engine struct {
	settings Settings
	composer *prompts.Composer
	bank     *questions.Bank
	provider llm.Provider
	store    CandidateStore
	log      *logrus.Logger

	endings map[string]struct{}
}

// NewEngine wires the state machine. provider and store may be nil: without a
// provider every delegated reply is the fallback message, and without a store
// candidate records are simply not persisted.
func NewEngine(settings Settings, provider llm.Provider, store CandidateStore, log *logrus.Logger) *Engine {
	endings := make(map[string]struct{}, len(settings.EndingKeywords))
	for _, kw := range settings.EndingKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			endings[kw] = struct{}{}
		}
	}

	return &Engine{
		settings: settings,
		composer: prompts.NewComposer(settings.AppName, settings.PrivacyDisclaimer),
		bank:     questions.NewBank(),
		provider: provider,
		store:    store,
		log:      log,
		endings:  endings,
	}
}

// Greeting is the assistant's opening message, emitted before any user input.
func (e *Engine) Greeting(ctx context.Context) string {
	canned := "Hello! I'm the " + e.settings.AppName + ", your AI-powered recruitment companion. " +
		"I'll collect a few details about you and then ask some technical questions matched to your skills. " +
		"Send any message to get started."
	return e.stageReply(ctx, canned, e.composer.Greeting())
}

// Respond handles one user turn: it appends the input to the history, runs
// the transition for the current stage, appends the reply and returns it.
func (e *Engine) Respond(ctx context.Context, s *models.Session, input string) string {
	s.Append(models.RoleHuman, input)

	var reply string
	switch s.Stage {
	case models.StageGreeting:
		s.Stage = models.StageCollectName
		reply = e.fieldRequest(ctx, s, models.FieldName)

	case models.StageCollectName:
		s.Candidate.Set(models.FieldName, input)
		s.Stage = models.StageCollectEmail
		reply = e.fieldRequest(ctx, s, models.FieldEmail)

	case models.StageCollectEmail:
		if validation.ValidEmail(input) {
			s.Candidate.Set(models.FieldEmail, input)
			s.Stage = models.StageCollectPhone
			reply = e.fieldRequest(ctx, s, models.FieldPhone)
		} else {
			reply = "That doesn't appear to be a valid email address. Please provide a valid email in the format: example@domain.com"
		}

	case models.StageCollectPhone:
		if validation.ValidPhone(input) {
			s.Candidate.Set(models.FieldPhone, input)
			s.Stage = models.StageCollectExperience
			reply = e.fieldRequest(ctx, s, models.FieldExperience)
		} else {
			reply = "That doesn't appear to be a valid phone number. Please provide a valid phone number (10-15 digits, can include country code)."
		}

	case models.StageCollectExperience:
		s.Candidate.Set(models.FieldExperience, input)
		s.Stage = models.StageCollectPosition
		reply = e.fieldRequest(ctx, s, models.FieldPosition)

	case models.StageCollectPosition:
		s.Candidate.Set(models.FieldPosition, input)
		s.Stage = models.StageCollectLocation
		reply = e.fieldRequest(ctx, s, models.FieldLocation)

	case models.StageCollectLocation:
		s.Candidate.Set(models.FieldLocation, input)
		s.Stage = models.StageCollectTechStack
		reply = e.stageReply(ctx,
			"Almost done! Please list your tech stack: the programming languages, frameworks, databases, and tools you are proficient in.",
			e.composer.TechStackRequest(s.Candidate))

	case models.StageCollectTechStack:
		s.TechStack = validation.ParseTechStack(input)
		s.Stage = models.StageGenerateQuestions
		e.storeCandidate(ctx, s)
		reply = FormatQuestions(e.bank.Generate(s.TechStack))

	case models.StageGenerateQuestions:
		if e.isEnding(input) {
			s.Stage = models.StageEndConversation
			reply = e.stageReply(ctx,
				"Thank you for taking the time to chat with me today! Our recruitment team will review your information and reach out about next steps. Have a great day!",
				e.composer.Ending(s.Candidate))
		} else {
			reply = e.followUp(ctx, s, input)
		}

	case models.StageEndConversation:
		reply = e.settings.FallbackMessage

	default:
		// unknown stage in a stored session; treat as ended
		reply = e.settings.FallbackMessage
	}

	s.Append(models.RoleAssistant, reply)
	return reply
}

func (e *Engine) fieldRequest(ctx context.Context, s *models.Session, field string) string {
	return e.stageReply(ctx, cannedFieldRequests[field], e.composer.FieldRequest(field, s.Candidate))
}

var cannedFieldRequests = map[string]string{
	models.FieldName:       "Great, let's get started! Could you please tell me your full name?",
	models.FieldEmail:      "Thank you! Could you please share your email address?",
	models.FieldPhone:      "Got it. What's the best phone number to reach you? Feel free to include your country code.",
	models.FieldExperience: "Thanks! How many years of professional experience do you have?",
	models.FieldPosition:   "What position are you interested in applying for?",
	models.FieldLocation:   "And where are you currently located?",
}

// stageReply returns the canned text, or a generated one when DynamicPrompts
// is on and the generation service answers.
func (e *Engine) stageReply(ctx context.Context, canned, prompt string) string {
	if !e.settings.DynamicPrompts || e.provider == nil {
		return canned
	}
	out, err := e.provider.Generate(ctx, prompt)
	if err != nil {
		e.log.WithError(err).Warn("generation service failed for stage prompt; using canned text")
		return canned
	}
	return out
}

func (e *Engine) followUp(ctx context.Context, s *models.Session, input string) string {
	if e.provider == nil {
		return e.settings.FallbackMessage
	}

	prompt := e.composer.FollowUp(s.Recent(prompts.HistoryWindow), s.Candidate, s.TechStack, input)
	out, err := e.provider.Generate(ctx, prompt)
	if err != nil {
		e.log.WithError(err).WithField("session_id", s.SessionID).Warn("generation service failed; substituting fallback message")
		return e.settings.FallbackMessage
	}
	return out
}

// storeCandidate hands the finished record to the storage collaborator.
// Best-effort: the outcome is logged, the transition already happened.
func (e *Engine) storeCandidate(ctx context.Context, s *models.Session) {
	if e.store == nil {
		return
	}
	if err := e.store.Save(ctx, s.SessionID, s.Candidate, s.TechStack); err != nil {
		e.log.WithError(err).WithField("session_id", s.SessionID).Error("failed to store candidate record")
		return
	}
	e.log.WithField("session_id", s.SessionID).Info("candidate record stored")
}

// isEnding reports whether any word of the input is a configured ending
// keyword. Matching is case-insensitive and ignores surrounding punctuation.
func (e *Engine) isEnding(input string) bool {
	words := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	for _, w := range words {
		if _, ok := e.endings[w]; ok {
			return true
		}
	}
	return false
}
