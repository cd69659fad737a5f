package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project status values
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusPlanned    = "planned"
)

// ValidProjectStatus reports whether status is one of the known enum values.
func ValidProjectStatus(status string) bool {
	switch status {
	case ProjectStatusCompleted, ProjectStatusInProgress, ProjectStatusPlanned:
		return true
	}
	return false
}

// Project represents a portfolio project with metadata
type Project struct {
	ID           uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string                      `json:"description" db:"description" gorm:"type:text;not null"`
	VideoURL     *string                     `json:"videoUrl,omitempty" db:"video_url" gorm:"type:text"`
	ProjectLink  *string                     `json:"projectLink,omitempty" db:"project_link" gorm:"type:text"`
	SourceLink   *string                     `json:"sourceLink,omitempty" db:"source_link" gorm:"type:text"`
	Features     datatypes.JSONSlice[string] `json:"features" db:"features"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" db:"technologies"`
	Status       string                      `json:"status" db:"status" gorm:"type:text;not null;default:planned"`
	AuthorID     uuid.UUID                   `json:"authorId" db:"author_id" gorm:"type:uuid;not null;index"`
	Author       *User                       `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	CreatedAt    time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time                   `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
