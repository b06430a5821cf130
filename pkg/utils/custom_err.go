package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("missing or invalid request parameters")
	ErrUpstreamAI         = errors.New("ai generation failed")
	ErrDatabaseError      = errors.New("database error")
	ErrLessonPlanNotFound = errors.New("lesson plan not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
)
