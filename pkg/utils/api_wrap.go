package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"teachassist/pkg/aitext"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service-layer errors to HTTP responses. Extraction
// failures are reported, never silently replaced with synthetic data; the raw
// model text goes to the log for diagnosis.
func HandleServiceError(c *gin.Context, err error) {
	var malformed *aitext.MalformedOutputError

	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Missing or invalid request parameters")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrLessonPlanNotFound):
		RespondError(c, http.StatusNotFound, "Lesson plan not found")
	case errors.Is(err, ErrAssessmentNotFound):
		RespondError(c, http.StatusNotFound, "Assessment not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.As(err, &malformed):
		log.Printf("Malformed AI output: %v\nRaw response:\n%s", malformed.Err, malformed.Raw)
		RespondError(c, http.StatusInternalServerError, "AI returned malformed output. Please try again or refine your request.")
	case errors.Is(err, ErrUpstreamAI):
		log.Printf("AI generation error: %v", err)
		RespondError(c, http.StatusInternalServerError, "An unexpected error occurred during AI generation")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
