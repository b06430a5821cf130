package aitext

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the request into the instruction text sent to the model.
// Pure and deterministic; it never fails. Empty optional fields are omitted
// entirely rather than rendered as blank lines.
func BuildPrompt(req GenerationRequest, schema OutputSchema) string {
	switch schema {
	case SchemaQuestionList:
		return buildQuestionListPrompt(req)
	case SchemaAssessmentWithAnswerKey:
		return buildAssessmentPrompt(req)
	default:
		return buildLessonPlanPrompt(req)
	}
}

func buildLessonPlanPrompt(req GenerationRequest) string {
	var b strings.Builder

	b.WriteString("Generate a detailed lesson plan based on the following criteria:\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Grade Level: %s\n", req.Audience)
	if req.Duration != "" {
		fmt.Fprintf(&b, "Duration: %s\n", req.Duration)
	}
	if len(req.Objectives) > 0 {
		b.WriteString("Learning Objectives:\n")
		for _, obj := range req.Objectives {
			fmt.Fprintf(&b, "- %s\n", obj)
		}
	}
	if len(req.Materials) > 0 {
		b.WriteString("Materials:\n")
		for _, mat := range req.Materials {
			fmt.Fprintf(&b, "- %s\n", mat)
		}
	}
	if req.AssessmentMethod != "" {
		fmt.Fprintf(&b, "Assessment Method: %s\n", req.AssessmentMethod)
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "Additional Notes: %s\n", req.Notes)
	}
	if len(req.Standards) > 0 {
		fmt.Fprintf(&b, "Educational Standards: %s\n", strings.Join(req.Standards, ", "))
	}

	b.WriteString("\nStructure the lesson plan with the following sections, using bold markdown headers in exactly this order. Every section must be explicitly present, even if brief.\n\n")
	for _, label := range LessonPlanLabels {
		fmt.Fprintf(&b, "**%s:**\n", label)
	}
	b.WriteString("\nList Learning Objectives, Materials and Educational Standards as bullet points. Procedure should be a detailed step-by-step including Introduction, Main Activity and Conclusion.\n")

	return b.String()
}

func buildQuestionListPrompt(req GenerationRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d questions about %q for a %s level.", req.Count, req.Topic, req.Audience)
	b.WriteString(" Ensure the questions are clear, grammatically correct, and relevant to the topic.")
	b.WriteString(" Format the output as a JSON array of objects.")
	b.WriteString(` Each question object MUST have a "text" (the question string) and a "type" property.`)

	if req.QuestionType == TypeMultipleChoice || req.QuestionType == TypeAny || req.QuestionType == "" {
		b.WriteString("\nFor multiple-choice questions, each object MUST also have an \"options\" array (exactly 4 distinct string options) and a \"correctAnswer\" property (the text of the correct option).")
		b.WriteString(` Example: {"text": "What is 2+2?", "type": "multiple-choice", "options": ["3", "4", "5", "6"], "correctAnswer": "4"}`)
	}
	if req.QuestionType == TypeShortAnswer || req.QuestionType == TypeAny {
		b.WriteString("\nFor short-answer questions, each object MUST also have a \"suggestedAnswer\" property (a brief string).")
		b.WriteString(` Example: {"text": "Explain photosynthesis.", "type": "short-answer", "suggestedAnswer": "Process by which plants convert light energy into chemical energy."}`)
	}
	if req.QuestionType == TypeTrueFalse || req.QuestionType == TypeAny {
		b.WriteString("\nFor true/false questions, each object MUST also have a \"correctAnswer\" property (either \"True\" or \"False\").")
		b.WriteString(` Example: {"text": "The Earth is flat.", "type": "true-false", "correctAnswer": "False"}`)
	}
	if req.QuestionType == TypeEssay || req.QuestionType == TypeAny {
		b.WriteString("\nFor essay questions, each object MUST also have a \"suggestedAnswer\" property outlining the expected points.")
	}

	b.WriteString("\nDo NOT include any conversational text, preamble, or postamble outside the JSON array. No code fences. Just the JSON array itself.")
	b.WriteString("\nIf you cannot generate a specific question type, generate another type instead, but maintain the total number of questions.")

	return b.String()
}

func buildAssessmentPrompt(req GenerationRequest) string {
	var b strings.Builder

	b.WriteString("You are an expert educator tasked with creating assessment questions.\n")
	qt := req.QuestionType
	if qt == "" {
		qt = TypeMultipleChoice
	}
	fmt.Fprintf(&b, "Generate %d %s questions for a %q grade level on the subject of %q.\n", req.Count, qt, req.Audience, req.Topic)
	if req.Title != "" {
		fmt.Fprintf(&b, "The assessment is titled %q.\n", req.Title)
	}
	b.WriteString("\n")

	b.WriteString("For each question, provide:\n")
	b.WriteString("1. The question text.\n")
	b.WriteString("2. Exactly four possible answer choices.\n")
	b.WriteString("3. The full text of the correct answer choice.\n\n")

	b.WriteString("Output the result as a JSON array of objects. Each object must have this structure:\n")
	b.WriteString(`{
  "question": "The question text goes here?",
  "options": ["Option A text", "Option B text", "Option C text", "Option D text"],
  "correctAnswer": "Option A text"
}`)
	b.WriteString("\nThe correctAnswer value must match one of the options exactly.")
	b.WriteString("\nEnsure the JSON is well-formed and can be directly parsed. Do not include any additional text or markdown outside of the JSON array.")

	return b.String()
}
