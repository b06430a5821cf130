package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"teachassist/internal/models/db_models"
	"teachassist/internal/models/request_models"
	"teachassist/internal/models/response_models"
	"teachassist/internal/repositories"
	"teachassist/pkg/aitext"
	"teachassist/pkg/utils"

	"github.com/google/uuid"
)

type LessonPlanServiceInterface interface {
	GenerateLessonPlan(ctx context.Context, req request_models.LessonPlanRequest) (*response_models.LessonPlanResponse, error)
	GetLessonPlan(ctx context.Context, userID, id string) (*response_models.LessonPlanResponse, error)
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]response_models.LessonPlanResponse, error)
	Search(ctx context.Context, userID string, req request_models.LessonSearchRequest) ([]response_models.LessonPlanResponse, error)
	RelatedLessons(ctx context.Context, query string, limit int) ([]response_models.RelatedLesson, error)
}

type LessonPlanService struct {
	aiClient      utils.GenerativeClientInterface
	embedClient   utils.EmbeddingClientInterface
	planRepo      repositories.LessonPlanRepository
	embeddingRepo repositories.LessonEmbeddingRepository
}

func NewLessonPlanService(
	aiClient utils.GenerativeClientInterface,
	embedClient utils.EmbeddingClientInterface,
	planRepo repositories.LessonPlanRepository,
	embeddingRepo repositories.LessonEmbeddingRepository,
) LessonPlanServiceInterface {
	return &LessonPlanService{
		aiClient:      aiClient,
		embedClient:   embedClient,
		planRepo:      planRepo,
		embeddingRepo: embeddingRepo,
	}
}

// GenerateLessonPlan asks the model for a labeled-section lesson plan, pulls
// every section it can find, and fills whatever is missing from the request.
// A response with no recognizable headers still succeeds: the full raw text
// becomes the procedure and the request supplies the rest.
func (s *LessonPlanService) GenerateLessonPlan(ctx context.Context, req request_models.LessonPlanRequest) (*response_models.LessonPlanResponse, error) {
	if strings.TrimSpace(req.Topic) == "" ||
		strings.TrimSpace(req.GradeLevel) == "" ||
		len(req.LearningObjectives) == 0 ||
		strings.TrimSpace(req.UserID) == "" {
		return nil, utils.ErrInvalidInput
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	prompt := aitext.BuildPrompt(aitext.GenerationRequest{
		Topic:            req.Topic,
		Audience:         req.GradeLevel,
		Duration:         req.Duration,
		Objectives:       req.LearningObjectives,
		Materials:        req.Materials,
		AssessmentMethod: req.AssessmentMethod,
		Notes:            req.Notes,
		Standards:        req.Standards,
	}, aitext.SchemaLessonPlanSections)

	generated, err := s.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("lesson plan generation failed: %v", err)
		return nil, utils.ErrUpstreamAI
	}

	sections := aitext.ExtractSections(generated, aitext.LessonPlanLabels)

	plan := &db_models.LessonPlan{
		UserID:                    userID,
		Title:                     aitext.StringOr(aitext.FirstLine(sections["Lesson Title"]), req.Topic),
		Subject:                   aitext.StringOr(aitext.FirstLine(sections["Subject"]), req.Topic),
		GradeLevel:                aitext.StringOr(aitext.FirstLine(sections["Grade Level"]), req.GradeLevel),
		DurationMinutes:           parseDurationMinutes(req.Duration),
		Objectives:                aitext.ListOr(aitext.Lines(sections["Learning Objectives"]), req.LearningObjectives),
		Materials:                 aitext.ListOr(aitext.Lines(sections["Materials"]), req.Materials),
		Procedure:                 aitext.StringOr(aitext.Block(sections["Procedure"]), generated),
		DifferentiatedInstruction: aitext.Block(sections["Differentiated Instruction"]),
		AssessmentMethods:         aitext.StringOr(aitext.FirstLine(sections["Assessment Methods"]), req.AssessmentMethod),
		Homework:                  aitext.StringOr(aitext.FirstLine(sections["Homework"]), req.Notes),
		Notes:                     aitext.StringOr(aitext.Block(sections["Notes for Teacher"]), req.Notes),
		Standards:                 aitext.ListOr(aitext.Lines(sections["Educational Standards"]), req.Standards),
		Status:                    "draft",
		PrivacyLevel:              "private",
		AIGenerated:               true,
	}

	if err := s.planRepo.Insert(ctx, plan); err != nil {
		log.Printf("failed to persist lesson plan: %v", err)
		return nil, utils.ErrDatabaseError
	}

	s.storeEmbedding(ctx, plan)

	resp := toLessonPlanResponse(*plan)
	return &resp, nil
}

// GetLessonPlan fetches one plan. Plans are private to their owner.
func (s *LessonPlanService) GetLessonPlan(ctx context.Context, userID, id string) (*response_models.LessonPlanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidInput
	}

	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || plan.UserID.String() != userID {
		return nil, utils.ErrLessonPlanNotFound
	}

	resp := toLessonPlanResponse(*plan)
	return &resp, nil
}

func (s *LessonPlanService) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]response_models.LessonPlanResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	plans, err := s.planRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.LessonPlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, toLessonPlanResponse(plan))
	}
	return responses, nil
}

func (s *LessonPlanService) Search(ctx context.Context, userID string, req request_models.LessonSearchRequest) ([]response_models.LessonPlanResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	plans, err := s.planRepo.Search(ctx, userID, req.Query, req.Subject, req.GradeLevel)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.LessonPlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, toLessonPlanResponse(plan))
	}
	return responses, nil
}

// RelatedLessons runs a cosine similarity search over stored lesson
// embeddings for the given free-text query.
func (s *LessonPlanService) RelatedLessons(ctx context.Context, query string, limit int) ([]response_models.RelatedLesson, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit < 1 || limit > 20 {
		limit = 5
	}

	vector, err := s.embedClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("embedding lookup failed: %v", err)
		return nil, utils.ErrUpstreamAI
	}

	hits, err := s.embeddingRepo.SearchByVector(ctx, vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	related := make([]response_models.RelatedLesson, 0, len(hits))
	for _, hit := range hits {
		related = append(related, response_models.RelatedLesson{
			LessonPlanID: hit.LessonPlanID.String(),
			Title:        hit.Title,
			Subject:      hit.Subject,
			GradeLevel:   hit.GradeLevel,
			Similarity:   hit.Similarity,
		})
	}
	return related, nil
}

// storeEmbedding indexes the new plan for similarity search. Failures are
// logged and swallowed: the plan is already saved and the index can be
// rebuilt later.
func (s *LessonPlanService) storeEmbedding(ctx context.Context, plan *db_models.LessonPlan) {
	text := fmt.Sprintf("%s %s %s %s", plan.Title, plan.Subject, plan.GradeLevel, plan.Procedure)
	vector, err := s.embedClient.GetEmbedding(ctx, text)
	if err != nil {
		log.Printf("skipping embedding for lesson plan %s: %v", plan.ID, err)
		return
	}

	err = s.embeddingRepo.Create(ctx, db_models.LessonEmbedding{
		LessonPlanID: plan.ID,
		Title:        plan.Title,
		Subject:      plan.Subject,
		GradeLevel:   plan.GradeLevel,
		Embedding:    vector,
	})
	if err != nil {
		log.Printf("failed to index lesson plan %s: %v", plan.ID, err)
	}
}

// parseDurationMinutes reads the leading integer out of strings like
// "45 minutes" or "45". Anything unparseable yields nil.
func parseDurationMinutes(duration string) *int {
	fields := strings.Fields(strings.TrimSpace(duration))
	if len(fields) == 0 {
		return nil
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes <= 0 {
		return nil
	}
	return &minutes
}

func toLessonPlanResponse(plan db_models.LessonPlan) response_models.LessonPlanResponse {
	return response_models.LessonPlanResponse{
		ID:                        plan.ID.String(),
		UserID:                    plan.UserID.String(),
		Title:                     plan.Title,
		Subject:                   plan.Subject,
		GradeLevel:                plan.GradeLevel,
		DurationMinutes:           plan.DurationMinutes,
		Objectives:                plan.Objectives,
		Materials:                 plan.Materials,
		Procedure:                 plan.Procedure,
		DifferentiatedInstruction: plan.DifferentiatedInstruction,
		AssessmentMethods:         plan.AssessmentMethods,
		Homework:                  plan.Homework,
		Notes:                     plan.Notes,
		Standards:                 plan.Standards,
		Status:                    plan.Status,
		PrivacyLevel:              plan.PrivacyLevel,
		AIGenerated:               plan.AIGenerated,
	}
}
