package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"teachassist/internal/models/db_models"
	"teachassist/internal/models/request_models"
	"teachassist/internal/repositories"
)

type fakeAIClient struct {
	response string
	err      error
	prompts  []string
	calls    int
}

func (f *fakeAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeAIClient) Close() error { return nil }

type fakeEmbeddingClient struct {
	err   error
	calls int
}

func (f *fakeEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	f.calls++
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	return pgvector.NewVector(make([]float32, 1536)), nil
}

type fakeLessonPlanRepo struct {
	plans     []db_models.LessonPlan
	insertErr error
}

func (f *fakeLessonPlanRepo) Insert(ctx context.Context, plan *db_models.LessonPlan) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans = append(f.plans, *plan)
	return nil
}

func (f *fakeLessonPlanRepo) GetByID(ctx context.Context, id string) (*db_models.LessonPlan, error) {
	for i := range f.plans {
		if f.plans[i].ID.String() == id {
			return &f.plans[i], nil
		}
	}
	return nil, nil
}

func (f *fakeLessonPlanRepo) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.LessonPlan, error) {
	var out []db_models.LessonPlan
	for _, plan := range f.plans {
		if plan.UserID.String() == userID {
			out = append(out, plan)
		}
	}
	return out, nil
}

func (f *fakeLessonPlanRepo) Search(ctx context.Context, userID, term, subject, gradeLevel string) ([]db_models.LessonPlan, error) {
	return f.ListByUser(ctx, userID, 1, 50)
}

type fakeEmbeddingRepo struct {
	stored []db_models.LessonEmbedding
	hits   []repositories.LessonEmbeddingHit
}

func (f *fakeEmbeddingRepo) Create(ctx context.Context, embedding db_models.LessonEmbedding) error {
	f.stored = append(f.stored, embedding)
	return nil
}

func (f *fakeEmbeddingRepo) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]repositories.LessonEmbeddingHit, error) {
	if limit < len(f.hits) {
		return f.hits[:limit], nil
	}
	return f.hits, nil
}

type fakeAssessmentRepo struct {
	assessments []db_models.Assessment
	insertErr   error
}

func (f *fakeAssessmentRepo) Insert(ctx context.Context, assessment *db_models.Assessment) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	f.assessments = append(f.assessments, *assessment)
	return nil
}

func (f *fakeAssessmentRepo) GetByID(ctx context.Context, id string) (*db_models.Assessment, error) {
	for i := range f.assessments {
		if f.assessments[i].ID.String() == id {
			return &f.assessments[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAssessmentRepo) List(ctx context.Context, userID string, filters request_models.AssessmentFilters) ([]db_models.Assessment, error) {
	var out []db_models.Assessment
	for _, assessment := range f.assessments {
		if assessment.UserID.String() == userID {
			out = append(out, assessment)
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if _, exists := f.accounts[account.Email]; exists {
		return errors.New("duplicate email")
	}
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.accounts[email], nil
}
