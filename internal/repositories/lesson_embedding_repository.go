package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"teachassist/internal/models/db_models"
)

type LessonEmbeddingRepository interface {
	Create(ctx context.Context, embedding db_models.LessonEmbedding) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]LessonEmbeddingHit, error)
}

type LessonEmbeddingHit struct {
	db_models.LessonEmbedding
	Similarity float64
}

type lessonEmbeddingRepository struct {
	db *gorm.DB
}

func NewLessonEmbeddingRepository(db *gorm.DB) LessonEmbeddingRepository {
	return &lessonEmbeddingRepository{db: db}
}

func (r *lessonEmbeddingRepository) Create(ctx context.Context, embedding db_models.LessonEmbedding) error {
	return r.db.WithContext(ctx).Create(&embedding).Error
}

func (r *lessonEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]LessonEmbeddingHit, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []LessonEmbeddingHit
	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM lesson_embeddings
        ORDER BY embedding <=> $1
        LIMIT $2
    `
	err := r.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
