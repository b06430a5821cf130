package assessments_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"teachassist/internal/api/controllers"
	"teachassist/internal/repositories"
	"teachassist/internal/services"
	mem "teachassist/pkg/memcache"
	"teachassist/pkg/utils"
)

var Module = fx.Provide(
	provideAssessmentRepo,
	provideQuestionService,
	provideAssessmentService,
	controllers.NewAssessmentController)

func provideAssessmentRepo(db *gorm.DB) repositories.AssessmentRepository {
	return repositories.NewAssessmentRepository(db)
}

func provideQuestionService(aiClient utils.GenerativeClientInterface, cache *mem.GenerationCache) services.QuestionServiceInterface {
	return services.NewQuestionService(aiClient, cache)
}

func provideAssessmentService(aiClient utils.GenerativeClientInterface, assessmentRepo repositories.AssessmentRepository) services.AssessmentServiceInterface {
	return services.NewAssessmentService(aiClient, assessmentRepo)
}
