package request_models

// LessonPlanRequest is the body of POST /generate-lesson-plan. Topic,
// gradeLevel, learningObjectives and userId are required; the rest only
// shape the prompt when present.
type LessonPlanRequest struct {
	Topic              string   `json:"topic"`
	GradeLevel         string   `json:"gradeLevel"`
	Duration           string   `json:"duration,omitempty"` // e.g. "45 minutes"
	LearningObjectives []string `json:"learningObjectives"`
	Materials          []string `json:"materials,omitempty"`
	AssessmentMethod   string   `json:"assessmentMethod,omitempty"`
	Notes              string   `json:"notes,omitempty"`
	Standards          []string `json:"standards,omitempty"`
	UserID             string   `json:"userId"`
}

type LessonSearchRequest struct {
	Query      string `form:"q"`
	Subject    string `form:"subject"`
	GradeLevel string `form:"grade"`
}
