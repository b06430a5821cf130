package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"teachassist/internal/models/db_models"
)

type LessonPlanRepository interface {
	Insert(ctx context.Context, plan *db_models.LessonPlan) error
	GetByID(ctx context.Context, id string) (*db_models.LessonPlan, error)
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.LessonPlan, error)
	Search(ctx context.Context, userID, term, subject, gradeLevel string) ([]db_models.LessonPlan, error)
}

type lessonPlanRepository struct {
	db *gorm.DB
}

func NewLessonPlanRepository(db *gorm.DB) LessonPlanRepository {
	return &lessonPlanRepository{db: db}
}

func (r *lessonPlanRepository) Insert(ctx context.Context, plan *db_models.LessonPlan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(plan).Error
	})
}

func (r *lessonPlanRepository) GetByID(ctx context.Context, id string) (*db_models.LessonPlan, error) {
	var plan db_models.LessonPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// ListByUser returns the user's plans newest first.
func (r *lessonPlanRepository) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.LessonPlan, error) {
	var plans []db_models.LessonPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *lessonPlanRepository) Search(ctx context.Context, userID, term, subject, gradeLevel string) ([]db_models.LessonPlan, error) {
	query := r.db.WithContext(ctx).Model(&db_models.LessonPlan{}).Where("user_id = ?", userID)

	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if gradeLevel != "" {
		query = query.Where("grade_level = ?", gradeLevel)
	}
	if term != "" {
		like := "%" + term + "%"
		query = query.Where("title ILIKE ? OR subject ILIKE ? OR procedure ILIKE ?", like, like, like)
	}

	var plans []db_models.LessonPlan
	if err := query.Order("created_at DESC").Limit(50).Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
