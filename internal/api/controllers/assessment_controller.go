package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teachassist/internal/models/request_models"
	"teachassist/internal/services"
	"teachassist/pkg/utils"
)

type AssessmentController struct {
	questionService   services.QuestionServiceInterface
	assessmentService services.AssessmentServiceInterface
}

func NewAssessmentController(
	questionService services.QuestionServiceInterface,
	assessmentService services.AssessmentServiceInterface,
) *AssessmentController {
	return &AssessmentController{
		questionService:   questionService,
		assessmentService: assessmentService,
	}
}

// GenerateQuestions godoc
// @Summary Generate practice questions
// @Description Generate a validated batch of questions for a topic and grade
// @Tags Assessments
// @Accept json
// @Produce json
// @Param request body request_models.QuestionRequest true "Question generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/generate-questions [post]
func (a *AssessmentController) GenerateQuestions(c *gin.Context) {
	var req request_models.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	questions, err := a.questionService.GenerateQuestions(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions, "Questions generated successfully")
}

// GenerateAssessment godoc
// @Summary Generate an assessment
// @Description Generate a complete assessment with answer key and persist it
// @Tags Assessments
// @Accept json
// @Produce json
// @Param request body request_models.AssessmentRequest true "Assessment generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/generate-assessment [post]
func (a *AssessmentController) GenerateAssessment(c *gin.Context) {
	var req request_models.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	assessment, err := a.assessmentService.GenerateAssessment(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, assessment, "Assessment generated successfully")
}

// GetByID godoc
// @Summary Get an assessment
// @Description Fetch one of the authenticated user's assessments
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/assessments/{id} [get]
func (a *AssessmentController) GetByID(c *gin.Context) {
	assessment, err := a.assessmentService.GetAssessment(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, assessment, "Assessment fetched successfully")
}

// List godoc
// @Summary List assessments
// @Description List the authenticated user's assessments with optional filters
// @Tags Assessments
// @Produce json
// @Param subject query string false "Subject filter"
// @Param grade query string false "Grade filter"
// @Param type query string false "Assessment type filter"
// @Param search query string false "Search term over titles and questions"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/assessments [get]
func (a *AssessmentController) List(c *gin.Context) {
	var filters request_models.AssessmentFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	assessments, err := a.assessmentService.ListAssessments(c.Request.Context(), c.GetString("user_id"), filters)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, assessments, "Assessments fetched successfully")
}
