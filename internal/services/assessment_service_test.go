package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"teachassist/internal/models/request_models"
	"teachassist/pkg/aitext"
	"teachassist/pkg/utils"
)

const validAssessmentOutput = `Here is your assessment:
[
  {
    "question": "Which planet is closest to the sun?",
    "options": ["Mercury", "Venus", "Earth", "Mars"],
    "correctAnswer": "Mercury"
  },
  {
    "question": "Which planet is known as the red planet?",
    "options": ["Jupiter", "Saturn", "Mars", "Neptune"],
    "correctAnswer": "Mars"
  },
  {
    "question": "How many planets orbit the sun?",
    "options": ["7", "8", "9", "10"],
    "correctAnswer": "8"
  }
]`

func validAssessmentRequest() request_models.AssessmentRequest {
	return request_models.AssessmentRequest{
		Title:        "Solar System Quiz",
		Subject:      "Science",
		Grade:        "5th Grade",
		NumQuestions: 3,
		UserID:       uuid.NewString(),
	}
}

func TestGenerateAssessment(t *testing.T) {
	repo := &fakeAssessmentRepo{}
	svc := NewAssessmentService(&fakeAIClient{response: validAssessmentOutput}, repo)

	resp, err := svc.GenerateAssessment(context.Background(), validAssessmentRequest())
	if err != nil {
		t.Fatalf("GenerateAssessment returned error: %v", err)
	}

	if resp.Title != "Solar System Quiz" {
		t.Errorf("title = %q", resp.Title)
	}
	if resp.TotalQuestions != 3 || len(resp.Questions) != 3 {
		t.Fatalf("got %d/%d questions, want 3", resp.TotalQuestions, len(resp.Questions))
	}
	for _, q := range resp.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %q has %d options, want 4", q.Text, len(q.Options))
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
			}
		}
		if !found {
			t.Errorf("question %q answer %q not among options", q.Text, q.CorrectAnswer)
		}
	}
	if !resp.AIGenerated {
		t.Error("expected AIGenerated to be true")
	}

	if len(repo.assessments) != 1 {
		t.Fatalf("expected 1 persisted assessment, got %d", len(repo.assessments))
	}
	var stored []aitext.Question
	if err := json.Unmarshal(repo.assessments[0].Questions, &stored); err != nil {
		t.Fatalf("stored questions are not valid JSON: %v", err)
	}
	if len(stored) != 3 {
		t.Errorf("stored %d questions, want 3", len(stored))
	}
}

// An answer key entry that does not match any option poisons the batch.
func TestGenerateAssessmentAnswerOutsideOptions(t *testing.T) {
	bad := `[
  {
    "question": "Which planet is closest to the sun?",
    "options": ["Mercury", "Venus", "Earth", "Mars"],
    "correctAnswer": "Pluto"
  }
]`
	svc := NewAssessmentService(&fakeAIClient{response: bad}, &fakeAssessmentRepo{})

	_, err := svc.GenerateAssessment(context.Background(), validAssessmentRequest())
	var malformed *aitext.MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedOutputError", err)
	}
}

// An omitted questionType means multiple-choice, and the prompt must say so.
func TestGenerateAssessmentDefaults(t *testing.T) {
	ai := &fakeAIClient{response: validAssessmentOutput}
	svc := NewAssessmentService(ai, &fakeAssessmentRepo{})

	req := validAssessmentRequest()
	req.NumQuestions = 0
	req.QuestionType = ""
	if _, err := svc.GenerateAssessment(context.Background(), req); err != nil {
		t.Fatalf("GenerateAssessment returned error: %v", err)
	}
	if len(ai.prompts) != 1 {
		t.Fatalf("expected one prompt, got %d", len(ai.prompts))
	}
	if !strings.Contains(ai.prompts[0], "Generate 5 multiple-choice questions") {
		t.Errorf("prompt does not request multiple-choice questions:\n%s", ai.prompts[0])
	}
	if strings.Contains(ai.prompts[0], "any questions") {
		t.Errorf("prompt asks for %q question type", "any")
	}
}

func TestGenerateAssessmentValidation(t *testing.T) {
	svc := NewAssessmentService(&fakeAIClient{response: validAssessmentOutput}, &fakeAssessmentRepo{})

	req := validAssessmentRequest()
	req.Title = ""
	if _, err := svc.GenerateAssessment(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("missing title: err = %v, want ErrInvalidInput", err)
	}

	req = validAssessmentRequest()
	req.UserID = "not-a-uuid"
	if _, err := svc.GenerateAssessment(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("bad user id: err = %v, want ErrInvalidInput", err)
	}
}

func TestGetAssessmentOwnership(t *testing.T) {
	repo := &fakeAssessmentRepo{}
	svc := NewAssessmentService(&fakeAIClient{response: validAssessmentOutput}, repo)

	req := validAssessmentRequest()
	created, err := svc.GenerateAssessment(context.Background(), req)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	fetched, err := svc.GetAssessment(context.Background(), req.UserID, created.ID)
	if err != nil {
		t.Fatalf("GetAssessment returned error: %v", err)
	}
	if len(fetched.Questions) != 3 {
		t.Errorf("fetched %d questions, want 3", len(fetched.Questions))
	}

	if _, err := svc.GetAssessment(context.Background(), uuid.NewString(), created.ID); !errors.Is(err, utils.ErrAssessmentNotFound) {
		t.Errorf("other user: err = %v, want ErrAssessmentNotFound", err)
	}
}

func TestListAssessmentsFiltersByUser(t *testing.T) {
	repo := &fakeAssessmentRepo{}
	svc := NewAssessmentService(&fakeAIClient{response: validAssessmentOutput}, repo)

	req := validAssessmentRequest()
	if _, err := svc.GenerateAssessment(context.Background(), req); err != nil {
		t.Fatalf("seed: %v", err)
	}

	listed, err := svc.ListAssessments(context.Background(), req.UserID, request_models.AssessmentFilters{})
	if err != nil {
		t.Fatalf("ListAssessments returned error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("got %d assessments, want 1", len(listed))
	}
	if len(listed[0].Questions) != 3 {
		t.Errorf("listed assessment has %d questions, want 3", len(listed[0].Questions))
	}

	other, err := svc.ListAssessments(context.Background(), uuid.NewString(), request_models.AssessmentFilters{})
	if err != nil {
		t.Fatalf("ListAssessments returned error: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other user sees %d assessments, want 0", len(other))
	}
}
