// Package prompts assembles the text sent to the generation service. Every
// builder is pure string assembly over typed parameters; calling the service
// is the caller's job.
package prompts

import (
	"strings"

	"github.com/talentscout/hiring-assistant/internal/models"
)

// HistoryWindow bounds how much recent conversation is embedded in follow-up
// and fallback prompts.
const HistoryWindow = 6

type Composer struct {
	systemPrompt string
}

func NewComposer(appName, privacyDisclaimer string) *Composer {
	var b strings.Builder
	b.WriteString("You are the " + appName + ", an AI chatbot designed to help with the initial screening of candidates for technical positions. ")
	b.WriteString("Your goal is to gather essential information from candidates and assess their technical proficiency through relevant questions.\n\n")
	b.WriteString("Guidelines for your behavior:\n")
	b.WriteString("1. Be professional, friendly, and conversational\n")
	b.WriteString("2. Stay focused on the recruitment process\n")
	b.WriteString("3. Ask clear, concise questions\n")
	b.WriteString("4. Provide helpful responses to candidate questions\n")
	b.WriteString("5. Maintain context throughout the conversation\n")
	b.WriteString("6. If you don't understand a response, ask for clarification\n")
	b.WriteString("7. Do not ask for sensitive personal information beyond basic contact details\n")
	b.WriteString("8. Be respectful of the candidate's time and experience\n\n")
	b.WriteString(privacyDisclaimer)
	return &Composer{systemPrompt: b.String()}
}

// Greeting asks the service for the opening message of a new chat.
func (c *Composer) Greeting() string {
	return c.systemPrompt + "\n\nCreate a friendly greeting for a candidate who has just started interacting with the assistant. Introduce yourself and explain your purpose."
}

// FieldRequest asks the service to phrase the question for one intake field.
// Already-collected fields are embedded as context; the field currently being
// requested is excluded.
func (c *Composer) FieldRequest(field string, collected models.CandidateRecord) string {
	var b strings.Builder
	b.WriteString(c.systemPrompt)
	b.WriteString("\n\n")
	if ctx := renderRecord(collected, field); ctx != "" {
		b.WriteString("The candidate has already provided the following information:\n")
		b.WriteString(ctx)
		b.WriteString("\n")
	}
	b.WriteString("Create a polite question to ask the candidate for their " + field + ".")
	return b.String()
}

// TechStackRequest asks the service to phrase the tech-stack question, with
// the full record as context.
func (c *Composer) TechStackRequest(collected models.CandidateRecord) string {
	var b strings.Builder
	b.WriteString(c.systemPrompt)
	b.WriteString("\n\nThe candidate has provided the following information:\n")
	b.WriteString(renderRecord(collected, ""))
	b.WriteString("\nCreate a question asking the candidate to specify their tech stack, including programming languages, frameworks, databases, and tools they are proficient in.")
	return b.String()
}

// TechnicalQuestions asks the service to produce screening questions for the
// given technologies.
func (c *Composer) TechnicalQuestions(techStack []string) string {
	return c.systemPrompt +
		"\n\nThe candidate has specified proficiency in the following technologies: " + strings.Join(techStack, ", ") +
		".\n\nGenerate 3-5 technical questions for each technology that would help assess the candidate's proficiency. The questions should be challenging but appropriate for an initial screening."
}

// FollowUp builds the prompt for continuing the technical assessment after a
// candidate reply. history should already be bounded to HistoryWindow.
func (c *Composer) FollowUp(history []models.Message, rec models.CandidateRecord, techStack []string, input string) string {
	var b strings.Builder
	b.WriteString(c.systemPrompt)
	b.WriteString("\n\nCandidate Information:\n")
	b.WriteString(renderRecord(rec, ""))
	b.WriteString("\nTech Stack: " + strings.Join(techStack, ", ") + "\n\n")
	writeHistory(&b, history)
	b.WriteString("\nCandidate's latest response: " + input + "\n")
	b.WriteString("\nGenerate a thoughtful, professional response that continues the technical assessment conversation. Your response should acknowledge the candidate's answer, provide relevant insights or follow-up questions, and maintain a friendly tone.")
	return b.String()
}

// Ending asks the service for a closing message.
func (c *Composer) Ending(rec models.CandidateRecord) string {
	var b strings.Builder
	b.WriteString(c.systemPrompt)
	b.WriteString("\n\nThe candidate has provided the following information:\n")
	b.WriteString(renderRecord(rec, ""))
	b.WriteString("\nThe conversation with the candidate is ending. Generate a polite message thanking them for their time, informing them about next steps in the recruitment process, and concluding the conversation professionally.")
	return b.String()
}

// Fallback builds the recovery prompt for unexpected or unclear input.
func (c *Composer) Fallback(history []models.Message, input string) string {
	var b strings.Builder
	b.WriteString(c.systemPrompt)
	b.WriteString("\n\n")
	writeHistory(&b, history)
	b.WriteString("\nCandidate's latest response: " + input + "\n")
	b.WriteString("\nThe candidate's response is unexpected or unclear. Generate a polite response that acknowledges their message, asks for clarification if needed, and gently guides the conversation back to the recruitment screening process.")
	return b.String()
}

// renderRecord writes "- Field: value" lines in collection order, skipping
// empty fields and the excluded one.
func renderRecord(rec models.CandidateRecord, exclude string) string {
	var b strings.Builder
	for _, field := range models.FieldOrder {
		if field == exclude {
			continue
		}
		v := rec.Get(field)
		if v == "" {
			continue
		}
		b.WriteString("- " + capitalize(field) + ": " + v + "\n")
	}
	return b.String()
}

func writeHistory(b *strings.Builder, history []models.Message) {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}
	b.WriteString("Recent Conversation:\n")
	for _, m := range history {
		role := "Candidate"
		if m.Role == models.RoleAssistant {
			role = "Assistant"
		}
		b.WriteString(role + ": " + m.Content + "\n")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
