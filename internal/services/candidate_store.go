package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/talentscout/hiring-assistant/internal/conversation"
	"github.com/talentscout/hiring-assistant/internal/models"
	pgrepo "github.com/talentscout/hiring-assistant/internal/repositories/postgres"
)

// candidateStore adapts the postgres repo to the engine's storage
// collaborator contract.
type candidateStore struct {
	repo pgrepo.CandidateRepo
}

func NewCandidateStore(repo pgrepo.CandidateRepo) conversation.CandidateStore {
	return &candidateStore{repo: repo}
}

func (s *candidateStore) Save(ctx context.Context, sessionID string, rec models.CandidateRecord, techStack []string) error {
	stack, err := json.Marshal(techStack)
	if err != nil {
		return err
	}

	return s.repo.Save(ctx, &models.Candidate{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Name:       rec.Name,
		Email:      rec.Email,
		Phone:      rec.Phone,
		Experience: rec.Experience,
		Position:   rec.Position,
		Location:   rec.Location,
		TechStack:  datatypes.JSON(stack),
		CreatedAt:  time.Now().UTC(),
	})
}
