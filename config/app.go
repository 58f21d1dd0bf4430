package config

import (
	"os"
	"strings"
	"time"
)

// App holds the conversation-level settings the core consumes but never
// computes: product name, disclaimer, fallback text, ending keywords, and the
// generation-service coordinates.
type App struct {
	AppName           string
	PrivacyDisclaimer string
	FallbackMessage   string
	EndingKeywords    []string
	DynamicPrompts    bool
	SessionTTL        time.Duration

	VertexProjectID string
	VertexLocation  string
	VertexModel     string

	Port string
}

func LoadApp() App {
	a := App{
		AppName: envOr("APP_NAME", "TalentScout Hiring Assistant"),
		PrivacyDisclaimer: envOr("PRIVACY_DISCLAIMER",
			"Privacy note: the information you share is used only for recruitment screening and is handled in line with applicable data-protection rules."),
		FallbackMessage: envOr("FALLBACK_MESSAGE",
			"Thank you for your time! This conversation has ended. If you'd like to start over, please begin a new session."),
		DynamicPrompts: strings.EqualFold(os.Getenv("DYNAMIC_PROMPTS"), "true"),
		SessionTTL:     2 * time.Hour,

		VertexProjectID: os.Getenv("VERTEX_PROJECT_ID"),
		VertexLocation:  envOr("VERTEX_LOCATION", "us-central1"),
		VertexModel:     os.Getenv("VERTEX_MODEL"),

		Port: envOr("PORT", "8080"),
	}

	for _, kw := range strings.Split(envOr("ENDING_KEYWORDS", "bye,goodbye,exit,quit,end"), ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			a.EndingKeywords = append(a.EndingKeywords, kw)
		}
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			a.SessionTTL = d
		}
	}

	return a
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
