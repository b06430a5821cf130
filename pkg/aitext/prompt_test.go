package aitext

import (
	"strings"
	"testing"
)

func TestBuildPromptLessonPlanOmitsEmptyFields(t *testing.T) {
	req := GenerationRequest{
		Topic:    "Fractions",
		Audience: "5th Grade",
	}
	prompt := BuildPrompt(req, SchemaLessonPlanSections)

	if strings.Contains(prompt, "Materials:") && !strings.Contains(prompt, "**Materials:**") {
		t.Fatal("empty materials rendered as input criteria")
	}
	// Only the header-contract block may mention Materials.
	if strings.Contains(strings.Split(prompt, "Structure the lesson plan")[0], "Materials") {
		t.Fatal("Materials line present despite empty field")
	}
	if !strings.Contains(prompt, "Topic: Fractions") {
		t.Fatal("topic missing")
	}
	for _, label := range LessonPlanLabels {
		if !strings.Contains(prompt, "**"+label+":**") {
			t.Fatalf("label %q missing from output contract", label)
		}
	}
}

func TestBuildPromptLessonPlanRendersOptionalFields(t *testing.T) {
	req := GenerationRequest{
		Topic:      "Fractions",
		Audience:   "5th Grade",
		Duration:   "45 minutes",
		Objectives: []string{"Compare fractions"},
		Materials:  []string{"ruler", "protractor"},
		Standards:  []string{"CCSS.MATH.5.NF.A.1"},
	}
	prompt := BuildPrompt(req, SchemaLessonPlanSections)

	for _, want := range []string{
		"Duration: 45 minutes",
		"- Compare fractions",
		"- ruler",
		"- protractor",
		"Educational Standards: CCSS.MATH.5.NF.A.1",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	req := GenerationRequest{Topic: "Gravity", Audience: "8th", Count: 5, QuestionType: TypeAny}
	if BuildPrompt(req, SchemaQuestionList) != BuildPrompt(req, SchemaQuestionList) {
		t.Fatal("prompt not deterministic")
	}
}

func TestBuildPromptQuestionListContract(t *testing.T) {
	req := GenerationRequest{Topic: "Gravity", Audience: "8th grade", Count: 5, QuestionType: TypeAny}
	prompt := BuildPrompt(req, SchemaQuestionList)

	for _, want := range []string{
		"Generate 5 questions",
		`"Gravity"`,
		"JSON array",
		"multiple-choice",
		"short-answer",
		"true/false",
		"Do NOT include any conversational text",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptQuestionListSingleType(t *testing.T) {
	req := GenerationRequest{Topic: "Gravity", Audience: "8th", Count: 3, QuestionType: TypeTrueFalse}
	prompt := BuildPrompt(req, SchemaQuestionList)

	if strings.Contains(prompt, "suggestedAnswer") {
		t.Fatal("short-answer guidance leaked into true-false prompt")
	}
	if !strings.Contains(prompt, `"True" or "False"`) {
		t.Fatal("true-false guidance missing")
	}
}

func TestBuildPromptAssessmentContract(t *testing.T) {
	req := GenerationRequest{
		Title:    "Fractions Quiz",
		Topic:    "Math",
		Audience: "5th",
		Count:    3,
	}
	prompt := BuildPrompt(req, SchemaAssessmentWithAnswerKey)

	for _, want := range []string{
		"Generate 3 multiple-choice questions",
		`"Fractions Quiz"`,
		`"correctAnswer"`,
		"match one of the options exactly",
		"Do not include any additional text or markdown outside of the JSON array",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
