package aitext

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Question is one generated item for the question-list and assessment
// schemas. Options carries exactly 4 distinct entries for multiple-choice.
type Question struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	Type            string   `json:"type"`
	Options         []string `json:"options,omitempty"`
	CorrectAnswer   string   `json:"correctAnswer,omitempty"`
	SuggestedAnswer string   `json:"suggestedAnswer,omitempty"`
}

// assessment elements use "question" instead of "text" and always carry the
// answer key.
type assessmentElement struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// DecodeQuestionBatch turns the extracted array into validated Questions.
// One invalid element fails the entire batch: a half-valid question set is
// worse than none, since the caller cannot safely present it.
func DecodeQuestionBatch(elements []json.RawMessage, raw string) ([]Question, error) {
	if len(elements) == 0 {
		return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("empty question array")}
	}

	questions := make([]Question, 0, len(elements))
	for i, el := range elements {
		var q Question
		if err := json.Unmarshal(el, &q); err != nil {
			return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		if err := validateQuestion(q); err != nil {
			return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		questions = append(questions, q)
	}

	AssignIDs(questions)
	return questions, nil
}

// DecodeAssessmentBatch turns the extracted array into validated assessment
// Questions (multiple-choice with answer key), with the same whole-batch
// failure policy.
func DecodeAssessmentBatch(elements []json.RawMessage, raw string) ([]Question, error) {
	if len(elements) == 0 {
		return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("empty question array")}
	}

	questions := make([]Question, 0, len(elements))
	for i, el := range elements {
		var a assessmentElement
		if err := json.Unmarshal(el, &a); err != nil {
			return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		q := Question{
			Text:          strings.TrimSpace(a.Question),
			Type:          TypeMultipleChoice,
			Options:       a.Options,
			CorrectAnswer: strings.TrimSpace(a.CorrectAnswer),
		}
		if err := validateQuestion(q); err != nil {
			return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		questions = append(questions, q)
	}

	AssignIDs(questions)
	return questions, nil
}

func validateQuestion(q Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is empty")
	}
	switch q.Type {
	case TypeMultipleChoice:
		if len(q.Options) != 4 {
			return fmt.Errorf("multiple-choice question needs exactly 4 options, got %d", len(q.Options))
		}
		seen := make(map[string]bool, 4)
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("empty option")
			}
			if seen[opt] {
				return fmt.Errorf("duplicate option %q", opt)
			}
			seen[opt] = true
		}
		if q.CorrectAnswer == "" {
			return fmt.Errorf("missing correctAnswer")
		}
		if !seen[q.CorrectAnswer] {
			return fmt.Errorf("correctAnswer %q is not one of the options", q.CorrectAnswer)
		}
	case TypeTrueFalse:
		if q.CorrectAnswer != "True" && q.CorrectAnswer != "False" {
			return fmt.Errorf("true-false correctAnswer must be \"True\" or \"False\", got %q", q.CorrectAnswer)
		}
	case TypeShortAnswer, TypeEssay:
		// suggestedAnswer is desirable but its absence does not invalidate
		// the question; there is nothing to grade against.
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	return nil
}

// AssignIDs gives every question a fresh identifier combining the positional
// index with a random component. Uniqueness holds within one batch; nothing
// is promised across calls.
func AssignIDs(questions []Question) {
	now := time.Now().UnixMilli()
	for i := range questions {
		questions[i].ID = fmt.Sprintf("ai-q-%d-%d-%s", now, i, uuid.NewString()[:8])
	}
}
