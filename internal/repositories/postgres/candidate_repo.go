package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentscout/hiring-assistant/internal/models"
	"github.com/talentscout/hiring-assistant/internal/utils"
)

type CandidateRepo interface {
	Save(ctx context.Context, c *models.Candidate) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.Candidate, error)
	ListRecent(ctx context.Context, limit int) ([]models.Candidate, error)
}

type candidateRepo struct {
	db *gorm.DB
}

func NewCandidateRepo(db *gorm.DB) CandidateRepo {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Save(ctx context.Context, c *models.Candidate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *candidateRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.Candidate, error) {
	var row models.Candidate
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

func (r *candidateRepo) ListRecent(ctx context.Context, limit int) ([]models.Candidate, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []models.Candidate
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
