package aitext

import (
	"errors"
	"testing"
)

func mustExtract(t *testing.T, text string) []Question {
	t.Helper()
	elements, err := ExtractJSONArray(text)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	questions, err := DecodeQuestionBatch(elements, text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return questions
}

func TestDecodeQuestionBatchValid(t *testing.T) {
	text := `[
		{"text":"What is 2+2?","type":"multiple-choice","options":["3","4","5","6"],"correctAnswer":"4"},
		{"text":"Explain photosynthesis.","type":"short-answer","suggestedAnswer":"Light to chemical energy."},
		{"text":"The Earth is flat.","type":"true-false","correctAnswer":"False"}
	]`
	questions := mustExtract(t, text)

	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	seen := make(map[string]bool)
	for _, q := range questions {
		if q.ID == "" {
			t.Fatalf("question %q has no id", q.Text)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate id %q within batch", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestDecodeQuestionBatchFailsWholeBatch(t *testing.T) {
	// Second element is missing correctAnswer; the valid first element must
	// not survive on its own.
	text := `[
		{"text":"Fine question","type":"true-false","correctAnswer":"True"},
		{"text":"Broken","type":"multiple-choice","options":["a","b","c","d"]}
	]`
	elements, err := ExtractJSONArray(text)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	_, err = DecodeQuestionBatch(elements, text)
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
}

func TestDecodeQuestionBatchRejectsUnknownType(t *testing.T) {
	text := `[{"text":"Q","type":"matching"}]`
	elements, _ := ExtractJSONArray(text)
	if _, err := DecodeQuestionBatch(elements, text); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestDecodeQuestionBatchRejectsWrongOptionCount(t *testing.T) {
	text := `[{"text":"Q","type":"multiple-choice","options":["a","b","c"],"correctAnswer":"a"}]`
	elements, _ := ExtractJSONArray(text)
	if _, err := DecodeQuestionBatch(elements, text); err == nil {
		t.Fatal("expected error for 3 options")
	}
}

func TestDecodeAssessmentBatchScenario(t *testing.T) {
	// Well-formed response of exactly 3 objects, answer key inside options.
	text := `[
		{"question":"What is 1/2 + 1/4?","options":["3/4","1/2","2/6","1/8"],"correctAnswer":"3/4"},
		{"question":"Which fraction is largest?","options":["1/3","1/2","1/4","1/5"],"correctAnswer":"1/2"},
		{"question":"Simplify 4/8.","options":["1/2","2/4","4/8","1/4"],"correctAnswer":"1/2"}
	]`
	elements, err := ExtractJSONArray(text)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	questions, err := DecodeAssessmentBatch(elements, text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.Type != TypeMultipleChoice {
			t.Errorf("type = %q", q.Type)
		}
		if len(q.Options) != 4 {
			t.Errorf("options = %v", q.Options)
		}
	}
}

func TestDecodeAssessmentBatchAnswerOutsideOptions(t *testing.T) {
	text := `[{"question":"Q","options":["a","b","c","d"],"correctAnswer":"e"}]`
	elements, _ := ExtractJSONArray(text)
	if _, err := DecodeAssessmentBatch(elements, text); err == nil {
		t.Fatal("expected error for answer outside options")
	}
}

func TestDecodeAssessmentBatchEmpty(t *testing.T) {
	elements, err := ExtractJSONArray(`[]`)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if _, err := DecodeAssessmentBatch(elements, `[]`); err == nil {
		t.Fatal("expected error for empty batch")
	}
}
