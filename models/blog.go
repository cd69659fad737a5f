package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Blog represents a complete blog post with metadata. Excerpt and ReadTime
// are derived from Content whenever the content changes and no explicit
// value is supplied.
type Blog struct {
	ID            uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Content       string                      `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt       string                      `json:"excerpt" db:"excerpt" gorm:"type:text"`
	FeaturedImage *string                     `json:"featuredImage,omitempty" db:"featured_image" gorm:"type:text"`
	Published     bool                        `json:"published" db:"published" gorm:"not null;default:false"`
	Tags          datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	ReadTime      int                         `json:"readTime" db:"read_time" gorm:"type:integer;not null;default:0"`
	AuthorID      uuid.UUID                   `json:"authorId" db:"author_id" gorm:"type:uuid;not null;index"`
	Author        *User                       `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	CreatedAt     time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time                   `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
