package response_models

import "teachassist/pkg/aitext"

type QuestionsResponse struct {
	Questions []aitext.Question `json:"questions"`
}

type AssessmentResponse struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id,omitempty"`
	Title           string            `json:"title"`
	Type            string            `json:"type"`
	Subject         string            `json:"subject"`
	Grade           string            `json:"grade"`
	Questions       []aitext.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	HasBeenAssigned bool              `json:"has_been_assigned"`
	AIGenerated     bool              `json:"ai_generated"`
}
