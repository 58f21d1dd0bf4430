package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TranscriptEntry is one archived chat message. Entries are append-only;
// Seq preserves the in-session ordering.
type TranscriptEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID string             `bson:"session_id" json:"session_id"`
	Seq       int                `bson:"seq" json:"seq"`
	Role      Role               `bson:"role" json:"role"`
	Content   string             `bson:"content" json:"content"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
