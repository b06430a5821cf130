package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"teachassist/internal/models/db_models"
	"teachassist/internal/models/request_models"
	"teachassist/internal/models/response_models"
	"teachassist/internal/repositories"
	"teachassist/pkg/aitext"
	"teachassist/pkg/utils"

	"github.com/google/uuid"
)

type AssessmentServiceInterface interface {
	GenerateAssessment(ctx context.Context, req request_models.AssessmentRequest) (*response_models.AssessmentResponse, error)
	GetAssessment(ctx context.Context, userID, id string) (*response_models.AssessmentResponse, error)
	ListAssessments(ctx context.Context, userID string, filters request_models.AssessmentFilters) ([]response_models.AssessmentResponse, error)
}

type AssessmentService struct {
	aiClient       utils.GenerativeClientInterface
	assessmentRepo repositories.AssessmentRepository
}

func NewAssessmentService(aiClient utils.GenerativeClientInterface, assessmentRepo repositories.AssessmentRepository) AssessmentServiceInterface {
	return &AssessmentService{
		aiClient:       aiClient,
		assessmentRepo: assessmentRepo,
	}
}

// GenerateAssessment builds a complete graded assessment: every question
// carries four options and an answer key entry. The batch is rejected
// wholesale when any element is malformed.
func (s *AssessmentService) GenerateAssessment(ctx context.Context, req request_models.AssessmentRequest) (*response_models.AssessmentResponse, error) {
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Subject) == "" ||
		strings.TrimSpace(req.Grade) == "" {
		return nil, utils.ErrInvalidInput
	}
	if req.NumQuestions < 1 {
		req.NumQuestions = 5
	}
	// Assessments default to multiple-choice, not mixed types.
	if strings.TrimSpace(req.QuestionType) == "" {
		req.QuestionType = aitext.TypeMultipleChoice
	}
	questionType := normalizeQuestionType(req.QuestionType)
	if questionType == "" {
		return nil, utils.ErrInvalidInput
	}

	prompt := aitext.BuildPrompt(aitext.GenerationRequest{
		Title:        req.Title,
		Topic:        req.Subject,
		Audience:     req.Grade,
		Count:        req.NumQuestions,
		QuestionType: questionType,
	}, aitext.SchemaAssessmentWithAnswerKey)

	generated, err := s.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("assessment generation failed: %v", err)
		return nil, utils.ErrUpstreamAI
	}

	elements, err := aitext.ExtractJSONArray(generated)
	if err != nil {
		return nil, err
	}

	questions, err := aitext.DecodeAssessmentBatch(elements, generated)
	if err != nil {
		return nil, err
	}

	assessment := &db_models.Assessment{
		Title:          req.Title,
		Type:           "Quiz",
		Subject:        req.Subject,
		Grade:          req.Grade,
		TotalQuestions: len(questions),
		AIGenerated:    true,
	}

	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		assessment.UserID = userID
	}

	encoded, err := json.Marshal(questions)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	assessment.Questions = encoded

	if err := s.assessmentRepo.Insert(ctx, assessment); err != nil {
		log.Printf("failed to persist assessment: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return toAssessmentResponse(*assessment, questions), nil
}

func (s *AssessmentService) GetAssessment(ctx context.Context, userID, id string) (*response_models.AssessmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidInput
	}

	assessment, err := s.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if assessment == nil || assessment.UserID.String() != userID {
		return nil, utils.ErrAssessmentNotFound
	}

	var questions []aitext.Question
	if err := json.Unmarshal(assessment.Questions, &questions); err != nil {
		log.Printf("assessment %s has unreadable questions: %v", assessment.ID, err)
		return nil, utils.ErrDatabaseError
	}
	return toAssessmentResponse(*assessment, questions), nil
}

func (s *AssessmentService) ListAssessments(ctx context.Context, userID string, filters request_models.AssessmentFilters) ([]response_models.AssessmentResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	assessments, err := s.assessmentRepo.List(ctx, userID, filters)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AssessmentResponse, 0, len(assessments))
	for _, assessment := range assessments {
		var questions []aitext.Question
		if err := json.Unmarshal(assessment.Questions, &questions); err != nil {
			log.Printf("skipping assessment %s with unreadable questions: %v", assessment.ID, err)
			continue
		}
		responses = append(responses, *toAssessmentResponse(assessment, questions))
	}
	return responses, nil
}

func toAssessmentResponse(assessment db_models.Assessment, questions []aitext.Question) *response_models.AssessmentResponse {
	ownerID := ""
	if assessment.UserID != uuid.Nil {
		ownerID = assessment.UserID.String()
	}
	return &response_models.AssessmentResponse{
		ID:              assessment.ID.String(),
		UserID:          ownerID,
		Title:           assessment.Title,
		Type:            assessment.Type,
		Subject:         assessment.Subject,
		Grade:           assessment.Grade,
		Questions:       questions,
		TotalQuestions:  assessment.TotalQuestions,
		HasBeenAssigned: assessment.HasBeenAssigned,
		AIGenerated:     assessment.AIGenerated,
	}
}
