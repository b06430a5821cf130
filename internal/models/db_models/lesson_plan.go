package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type LessonPlan struct {
	BaseModel
	UserID                    uuid.UUID `gorm:"type:uuid;index"`
	Title                     string
	Subject                   string
	GradeLevel                string
	DurationMinutes           *int
	Objectives                pq.StringArray `gorm:"type:text[]"`
	Materials                 pq.StringArray `gorm:"type:text[]"`
	Procedure                 string         `gorm:"type:text"`
	DifferentiatedInstruction string         `gorm:"type:text"`
	AssessmentMethods         string
	Homework                  string
	Notes                     string         `gorm:"type:text"`
	Standards                 pq.StringArray `gorm:"type:text[]"`
	Status                    string         `gorm:"default:draft"`
	PrivacyLevel              string         `gorm:"default:private"`
	AIGenerated               bool           `gorm:"default:false"`
}
