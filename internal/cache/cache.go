// Package cache keeps live sessions between page reloads. The UI holds only a
// session id; the full Session round-trips through here on every turn.
package cache

import (
	"context"
	"time"

	"github.com/talentscout/hiring-assistant/internal/models"
)

type SessionStore interface {
	Load(ctx context.Context, sessionID string) (s *models.Session, hit bool, err error)
	Save(ctx context.Context, s *models.Session, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}
