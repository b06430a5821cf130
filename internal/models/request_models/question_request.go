package request_models

// QuestionRequest is the body of POST /api/generate-questions.
type QuestionRequest struct {
	Topic        string `json:"topic"`
	Grade        string `json:"grade"`
	NumQuestions int    `json:"numQuestions"`
	QuestionType string `json:"questionType"` // multiple-choice | short-answer | true-false | essay | any
}

// AssessmentRequest is the body of POST /api/generate-assessment.
type AssessmentRequest struct {
	Title        string `json:"title"`
	Subject      string `json:"subject"`
	Grade        string `json:"grade"`
	NumQuestions int    `json:"numQuestions,omitempty"`
	QuestionType string `json:"questionType,omitempty"`
	UserID       string `json:"userId,omitempty"`
}

// AssessmentFilters narrow GET /api/assessments.
type AssessmentFilters struct {
	Subject    string `form:"subject"`
	Grade      string `form:"grade"`
	Type       string `form:"type"`
	SearchTerm string `form:"search"`
}
