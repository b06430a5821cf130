package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"teachassist/internal/models/db_models"
	"teachassist/internal/models/request_models"
)

type AssessmentRepository interface {
	Insert(ctx context.Context, assessment *db_models.Assessment) error
	GetByID(ctx context.Context, id string) (*db_models.Assessment, error)
	List(ctx context.Context, userID string, filters request_models.AssessmentFilters) ([]db_models.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Insert(ctx context.Context, assessment *db_models.Assessment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(assessment).Error
	})
}

func (r *assessmentRepository) GetByID(ctx context.Context, id string) (*db_models.Assessment, error) {
	var assessment db_models.Assessment
	err := r.db.WithContext(ctx).First(&assessment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assessment, nil
}

// List applies equality filters plus a search term matched against the title
// and the question text inside the jsonb column.
func (r *assessmentRepository) List(ctx context.Context, userID string, filters request_models.AssessmentFilters) ([]db_models.Assessment, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Assessment{}).Where("user_id = ?", userID)

	if filters.Subject != "" {
		query = query.Where("subject = ?", filters.Subject)
	}
	if filters.Grade != "" {
		query = query.Where("grade = ?", filters.Grade)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.SearchTerm != "" {
		like := "%" + filters.SearchTerm + "%"
		query = query.Where("title ILIKE ? OR questions::text ILIKE ?", like, like)
	}

	var assessments []db_models.Assessment
	if err := query.Order("created_at DESC").Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}
