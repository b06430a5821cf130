package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"teachassist/internal/models/request_models"
	"teachassist/internal/models/response_models"
	"teachassist/pkg/aitext"
	mem "teachassist/pkg/memcache"
	"teachassist/pkg/utils"
)

type QuestionServiceInterface interface {
	GenerateQuestions(ctx context.Context, req request_models.QuestionRequest) (*response_models.QuestionsResponse, error)
}

type QuestionService struct {
	aiClient utils.GenerativeClientInterface
	cache    *mem.GenerationCache
}

func NewQuestionService(aiClient utils.GenerativeClientInterface, cache *mem.GenerationCache) QuestionServiceInterface {
	return &QuestionService{
		aiClient: aiClient,
		cache:    cache,
	}
}

// GenerateQuestions produces a validated batch of practice questions. The
// model must return a pure JSON array; any element that fails validation
// fails the whole batch so callers never see a partially usable set.
func (s *QuestionService) GenerateQuestions(ctx context.Context, req request_models.QuestionRequest) (*response_models.QuestionsResponse, error) {
	if strings.TrimSpace(req.Topic) == "" || strings.TrimSpace(req.Grade) == "" {
		return nil, utils.ErrInvalidInput
	}
	if req.NumQuestions < 1 {
		req.NumQuestions = 5
	}
	questionType := normalizeQuestionType(req.QuestionType)
	if questionType == "" {
		return nil, utils.ErrInvalidInput
	}

	cacheKey := mem.Key("questions", req.Topic, req.Grade, questionType, strconv.Itoa(req.NumQuestions))
	if cached, ok := s.cache.Get(cacheKey); ok {
		if questions, ok := cached.([]aitext.Question); ok {
			return &response_models.QuestionsResponse{Questions: questions}, nil
		}
	}

	prompt := aitext.BuildPrompt(aitext.GenerationRequest{
		Topic:        req.Topic,
		Audience:     req.Grade,
		Count:        req.NumQuestions,
		QuestionType: questionType,
	}, aitext.SchemaQuestionList)

	generated, err := s.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("question generation failed: %v", err)
		return nil, utils.ErrUpstreamAI
	}

	elements, err := aitext.ExtractJSONArray(generated)
	if err != nil {
		return nil, err
	}

	questions, err := aitext.DecodeQuestionBatch(elements, generated)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, questions)

	return &response_models.QuestionsResponse{Questions: questions}, nil
}

func normalizeQuestionType(questionType string) string {
	switch strings.ToLower(strings.TrimSpace(questionType)) {
	case "":
		return aitext.TypeAny
	case aitext.TypeMultipleChoice, aitext.TypeShortAnswer, aitext.TypeTrueFalse, aitext.TypeEssay, aitext.TypeAny:
		return strings.ToLower(strings.TrimSpace(questionType))
	default:
		return ""
	}
}
