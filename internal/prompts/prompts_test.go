package prompts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentscout/hiring-assistant/internal/models"
)

const (
	testAppName    = "TalentScout Hiring Assistant"
	testDisclaimer = "Privacy note: screening data only."
)

func testComposer() *Composer {
	return NewComposer(testAppName, testDisclaimer)
}

func TestEveryBuilderEmbedsPreamble(t *testing.T) {
	c := testComposer()
	rec := models.CandidateRecord{Name: "Jane Doe"}

	built := []string{
		c.Greeting(),
		c.FieldRequest(models.FieldEmail, rec),
		c.TechStackRequest(rec),
		c.TechnicalQuestions([]string{"Go"}),
		c.FollowUp(nil, rec, []string{"Go"}, "answer"),
		c.Ending(rec),
		c.Fallback(nil, "huh?"),
	}
	for i, p := range built {
		assert.Contains(t, p, testAppName, "builder %d missing app name", i)
		assert.Contains(t, p, testDisclaimer, "builder %d missing disclaimer", i)
	}
}

func TestFieldRequestExcludesRequestedField(t *testing.T) {
	c := testComposer()
	rec := models.CandidateRecord{
		Name:  "Jane Doe",
		Email: "jane@x.com",
	}

	p := c.FieldRequest(models.FieldEmail, rec)
	assert.Contains(t, p, "- Name: Jane Doe")
	assert.NotContains(t, p, "jane@x.com")
	assert.Contains(t, p, "their email")
}

func TestFieldRequestWithNothingCollected(t *testing.T) {
	c := testComposer()

	p := c.FieldRequest(models.FieldName, models.CandidateRecord{})
	assert.NotContains(t, p, "already provided")
}

func TestTechStackRequestRendersRecordInOrder(t *testing.T) {
	c := testComposer()
	rec := models.CandidateRecord{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Position: "Backend Engineer",
	}

	p := c.TechStackRequest(rec)
	nameIdx := strings.Index(p, "- Name:")
	emailIdx := strings.Index(p, "- Email:")
	posIdx := strings.Index(p, "- Position:")
	require.True(t, nameIdx >= 0 && emailIdx >= 0 && posIdx >= 0)
	assert.Less(t, nameIdx, emailIdx)
	assert.Less(t, emailIdx, posIdx)
}

func TestFollowUpWindowsHistoryToSix(t *testing.T) {
	c := testComposer()

	var history []models.Message
	for i := 0; i < 9; i++ {
		role := models.RoleHuman
		if i%2 == 0 {
			role = models.RoleAssistant
		}
		history = append(history, models.Message{Role: role, Content: fmt.Sprintf("msg-%d", i)})
	}

	p := c.FollowUp(history, models.CandidateRecord{Name: "Jane"}, []string{"Go"}, "latest answer")
	for i := 0; i < 3; i++ {
		assert.NotContains(t, p, fmt.Sprintf("msg-%d", i))
	}
	for i := 3; i < 9; i++ {
		assert.Contains(t, p, fmt.Sprintf("msg-%d", i))
	}
	assert.Contains(t, p, "Assistant: msg-4")
	assert.Contains(t, p, "Candidate: msg-5")
	assert.Contains(t, p, "Tech Stack: Go")
	assert.Contains(t, p, "Candidate's latest response: latest answer")
}

func TestFallbackEmbedsHistoryAndInput(t *testing.T) {
	c := testComposer()
	history := []models.Message{
		{Role: models.RoleAssistant, Content: "What is a goroutine?"},
		{Role: models.RoleHuman, Content: "A small thread thing"},
	}

	p := c.Fallback(history, "banana")
	assert.Contains(t, p, "Assistant: What is a goroutine?")
	assert.Contains(t, p, "Candidate: A small thread thing")
	assert.Contains(t, p, "Candidate's latest response: banana")
	assert.Contains(t, p, "unexpected or unclear")
}
