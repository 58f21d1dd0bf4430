package conversation

import (
	"fmt"
	"strings"

	"github.com/talentscout/hiring-assistant/internal/questions"
)

// FormatQuestions renders the per-technology question sets as the chat reply
// shown after the tech stack is collected.
func FormatQuestions(sets []questions.Set) string {
	var b strings.Builder
	b.WriteString("Thank you for sharing your tech stack! Based on your skills, here are some screening questions:\n")

	if len(sets) == 0 {
		b.WriteString("\nI couldn't identify any technologies in your answer, so let's keep it open: tell me about a technical project you're proud of.\n")
	}

	for _, set := range sets {
		b.WriteString("\n**" + set.Technology + "**\n")
		for i, q := range set.Questions {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
		}
	}

	b.WriteString("\nFeel free to answer any of these. When you're done, just say goodbye.")
	return b.String()
}
