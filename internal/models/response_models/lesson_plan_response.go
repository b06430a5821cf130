package response_models

// LessonPlanResponse is the structured record handed back after generation
// and on reads: every section field is always present, empty when neither
// the model nor the original request supplied a value.
type LessonPlanResponse struct {
	ID                        string   `json:"id,omitempty"`
	UserID                    string   `json:"user_id"`
	Title                     string   `json:"title"`
	Subject                   string   `json:"subject"`
	GradeLevel                string   `json:"grade_level"`
	DurationMinutes           *int     `json:"duration,omitempty"`
	Objectives                []string `json:"objectives"`
	Materials                 []string `json:"materials"`
	Procedure                 string   `json:"procedure"`
	DifferentiatedInstruction string   `json:"differentiated_instruction"`
	AssessmentMethods         string   `json:"assessment_methods"`
	Homework                  string   `json:"homework"`
	Notes                     string   `json:"notes"`
	Standards                 []string `json:"standards"`
	Status                    string   `json:"status"`
	PrivacyLevel              string   `json:"privacy_level"`
	AIGenerated               bool     `json:"ai_generated"`
}

// RelatedLesson is one similarity-search hit.
type RelatedLesson struct {
	LessonPlanID string  `json:"lesson_plan_id"`
	Title        string  `json:"title"`
	Subject      string  `json:"subject"`
	GradeLevel   string  `json:"grade_level"`
	Similarity   float64 `json:"similarity"`
}
