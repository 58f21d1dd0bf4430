package models

import (
	"time"

	"gorm.io/datatypes"
)

// Field names of the intake sequence, in collection order.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldExperience = "experience"
	FieldPosition   = "position"
	FieldLocation   = "location"
)

var FieldOrder = []string{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldExperience,
	FieldPosition,
	FieldLocation,
}

// CandidateRecord accumulates the answers of the intake stages. Fields are
// only ever set, never cleared.
type CandidateRecord struct {
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Experience string `json:"experience,omitempty"`
	Position   string `json:"position,omitempty"`
	Location   string `json:"location,omitempty"`
}

func (r CandidateRecord) Get(field string) string {
	switch field {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldPhone:
		return r.Phone
	case FieldExperience:
		return r.Experience
	case FieldPosition:
		return r.Position
	case FieldLocation:
		return r.Location
	}
	return ""
}

func (r *CandidateRecord) Set(field, value string) {
	switch field {
	case FieldName:
		r.Name = value
	case FieldEmail:
		r.Email = value
	case FieldPhone:
		r.Phone = value
	case FieldExperience:
		r.Experience = value
	case FieldPosition:
		r.Position = value
	case FieldLocation:
		r.Location = value
	}
}

// Candidate is the persisted form of a completed intake, written once per
// session when the conversation reaches question generation.
type Candidate struct {
	ID         string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SessionID  string         `gorm:"column:session_id;type:uuid;index" json:"session_id"`
	Name       string         `gorm:"column:name;type:text" json:"name"`
	Email      string         `gorm:"column:email;type:text" json:"email"`
	Phone      string         `gorm:"column:phone;type:text" json:"phone"`
	Experience string         `gorm:"column:experience;type:text" json:"experience"`
	Position   string         `gorm:"column:position;type:text" json:"position"`
	Location   string         `gorm:"column:location;type:text" json:"location"`
	TechStack  datatypes.JSON `gorm:"column:tech_stack;type:jsonb" json:"tech_stack"`
	CreatedAt  time.Time      `gorm:"column:created_at;type:timestamptz;index" json:"created_at"`
}

func (Candidate) TableName() string { return "candidates" }
