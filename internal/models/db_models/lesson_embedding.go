package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// LessonEmbedding backs related-lesson search: one row per stored lesson
// plan, queried by cosine distance.
type LessonEmbedding struct {
	LessonPlanID uuid.UUID `gorm:"type:uuid;primaryKey;column:lesson_plan_id"`
	Title        string
	Subject      string
	GradeLevel   string
	Embedding    pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}
