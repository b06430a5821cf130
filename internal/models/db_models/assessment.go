package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Assessment stores generated quizzes and tests; the validated question batch
// lives in a jsonb column so the stored record matches exactly what the
// extractor produced.
type Assessment struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	Title           string
	Type            string `gorm:"default:Quiz"` // Quiz | Test | Worksheet | Exit Ticket
	Subject         string
	Grade           string
	Questions       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	TotalQuestions  int
	TimeLimit       *int
	HasBeenAssigned bool `gorm:"default:false"`
	AIGenerated     bool `gorm:"default:false"`
}
