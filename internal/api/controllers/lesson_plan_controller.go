package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"teachassist/internal/models/request_models"
	"teachassist/internal/services"
	"teachassist/pkg/utils"
)

type LessonPlanController struct {
	lessonPlanService services.LessonPlanServiceInterface
}

func NewLessonPlanController(lessonPlanService services.LessonPlanServiceInterface) *LessonPlanController {
	return &LessonPlanController{
		lessonPlanService: lessonPlanService,
	}
}

// Generate godoc
// @Summary Generate a lesson plan
// @Description Generate a structured lesson plan from a topic and grade level
// @Tags LessonPlans
// @Accept json
// @Produce json
// @Param request body request_models.LessonPlanRequest true "Lesson plan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate-lesson-plan [post]
func (l *LessonPlanController) Generate(c *gin.Context) {
	var req request_models.LessonPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.UserID == "" {
		req.UserID = c.GetString("user_id")
	}

	plan, err := l.lessonPlanService.GenerateLessonPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Lesson plan generated successfully")
}

// List godoc
// @Summary List lesson plans
// @Description List the authenticated user's lesson plans, newest first
// @Tags LessonPlans
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /lessons [get]
func (l *LessonPlanController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	plans, err := l.lessonPlanService.ListByUser(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Lesson plans fetched successfully")
}

// GetByID godoc
// @Summary Get a lesson plan
// @Description Fetch one of the authenticated user's lesson plans
// @Tags LessonPlans
// @Produce json
// @Param id path string true "Lesson plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /lessons/{id} [get]
func (l *LessonPlanController) GetByID(c *gin.Context) {
	plan, err := l.lessonPlanService.GetLessonPlan(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Lesson plan fetched successfully")
}

// Search godoc
// @Summary Search lesson plans
// @Description Search the authenticated user's lesson plans by keyword, subject and grade
// @Tags LessonPlans
// @Produce json
// @Param q query string false "Search term"
// @Param subject query string false "Subject filter"
// @Param grade query string false "Grade level filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /lessons/search [get]
func (l *LessonPlanController) Search(c *gin.Context) {
	var req request_models.LessonSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	plans, err := l.lessonPlanService.Search(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Lesson plans fetched successfully")
}

// Related godoc
// @Summary Find related lessons
// @Description Similarity search over stored lesson embeddings
// @Tags LessonPlans
// @Produce json
// @Param q query string true "Free text query"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /lessons/related [get]
func (l *LessonPlanController) Related(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	related, err := l.lessonPlanService.RelatedLessons(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, related, "Related lessons fetched successfully")
}
