package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentscout/hiring-assistant/internal/models"
)

type TranscriptRepository interface {
	Append(ctx context.Context, entries []models.TranscriptEntry) error
	ListBySession(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error)
}

type transcriptRepo struct {
	col *mongo.Collection
}

func NewTranscriptRepo(db *mongo.Database) TranscriptRepository {
	return &transcriptRepo{col: db.Collection("transcripts")}
}

func (r *transcriptRepo) Append(ctx context.Context, entries []models.TranscriptEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, len(entries))
	for i := range entries {
		docs[i] = entries[i]
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *transcriptRepo) ListBySession(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"session_id": sessionID},
		options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TranscriptEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
