package aitext

// OutputSchema selects the shape the model is instructed to produce and the
// extraction strategy used on its response.
type OutputSchema int

const (
	SchemaLessonPlanSections OutputSchema = iota
	SchemaQuestionList
	SchemaAssessmentWithAnswerKey
)

func (s OutputSchema) String() string {
	switch s {
	case SchemaLessonPlanSections:
		return "lesson-plan-sections"
	case SchemaQuestionList:
		return "question-list"
	case SchemaAssessmentWithAnswerKey:
		return "assessment-with-answer-key"
	default:
		return "unknown"
	}
}

// GenerationRequest is the caller's intent, shared by all three schemas.
// Topic and Audience must be validated non-empty by the caller before
// BuildPrompt; Count is required for the question and assessment schemas.
type GenerationRequest struct {
	Title            string
	Topic            string
	Audience         string
	Count            int
	QuestionType     string
	Duration         string
	Objectives       []string
	Materials        []string
	AssessmentMethod string
	Notes            string
	Standards        []string
}

// Question type values the model is allowed to emit.
const (
	TypeMultipleChoice = "multiple-choice"
	TypeShortAnswer    = "short-answer"
	TypeTrueFalse      = "true-false"
	TypeEssay          = "essay"
	TypeAny            = "any"
)

// LessonPlanLabels is the canonical header order for the lesson plan schema.
// Extraction scans forward through these in order, so the prompt must ask for
// them in exactly this order.
var LessonPlanLabels = []string{
	"Lesson Title",
	"Subject",
	"Grade Level",
	"Duration",
	"Learning Objectives",
	"Materials",
	"Procedure",
	"Differentiated Instruction",
	"Assessment Methods",
	"Homework",
	"Notes for Teacher",
	"Educational Standards",
	"Reflection",
}
